package resources_test

import (
	"testing"

	"github.com/blar/virtualc64/resources"
	"github.com/blar/virtualc64/test"
)

func TestJoinPath(t *testing.T) {
	pth, err := resources.JoinPath("foo/bar", "baz")
	test.Equate(t, err, nil)
	test.Equate(t, pth, ".virtualc64/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.Equate(t, err, nil)
	test.Equate(t, pth, ".virtualc64/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.Equate(t, err, nil)
	test.Equate(t, pth, ".virtualc64/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.Equate(t, err, nil)
	test.Equate(t, pth, ".virtualc64/baz")

	pth, err = resources.JoinPath("", "")
	test.Equate(t, err, nil)
	test.Equate(t, pth, ".virtualc64")
}
