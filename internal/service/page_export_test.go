package service

// ExtractTitleForTest exposes title extraction for tests.
func ExtractTitleForTest(body []byte) string {
	return extractTitle(body)
}

// FlattenArticleForTest exposes article flattening for tests.
func FlattenArticleForTest(content string) string {
	return flattenArticle(content)
}
