package htmlutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAttr(t *testing.T) {
	doc, err := Parse(`<html><head><link rel="canonical" href="https://example.com"></head></html>`)
	require.NoError(t, err)

	href, err := Attr(doc, `link[rel="canonical"]`, "href")
	require.NoError(t, err)
	require.Equal(t, "https://example.com", href)

	_, err = Attr(doc, `meta[name='title']`, "content")
	require.True(t, IsNotFound(err))

	_, err = Attr(doc, `link[rel="canonical"]`, "content")
	require.True(t, IsNotFound(err))
}

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(NotFound("thing is missing")))
	require.False(t, IsNotFound(errors.New("thing is missing")))
	require.False(t, IsNotFound(nil))
}
