package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"lingua/backend/internal/service"
)

func TestPageService_RejectsBadURL(t *testing.T) {
	svc := service.NewPageService(nil, nil)

	for _, bad := range []string{"", "not a url", "ftp://example.com/file", "javascript:alert(1)"} {
		_, err := svc.TranslateURL(context.Background(), bad, "es")
		require.ErrorIs(t, err, service.ErrInvalid, "url %q should be rejected before any fetch", bad)
	}
}

func TestExtractTitle(t *testing.T) {
	body := []byte(`<html><head><title>  Example Page  </title></head><body><p>hi</p></body></html>`)
	require.Equal(t, "Example Page", service.ExtractTitleForTest(body))

	require.Empty(t, service.ExtractTitleForTest([]byte(`<html><body><p>no title</p></body></html>`)))
}

func TestFlattenArticle(t *testing.T) {
	content := `<div><h1>Heading</h1><p>First.</p><p>Second <em>part</em>.</p><ul><li>item</li></ul></div>`
	got := service.FlattenArticleForTest(content)
	require.Equal(t, "Heading\n\nFirst.\n\nSecond part.\n\nitem", got)
}
