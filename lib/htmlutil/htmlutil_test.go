package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parseFragment(t testing.TB, body string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestProjections(t *testing.T) {
	testCases := []struct {
		name  string
		html  string
		first string
		full  string
	}{
		{
			name:  "plain text",
			html:  `<p id="target">USA</p>`,
			first: "USA",
			full:  "USA",
		},
		{
			name:  "leading icon",
			html:  `<p id="target"><span class="flag"></span> United States</p>`,
			first: " United States",
			full:  " United States",
		},
		{
			name:  "nested fragments",
			html:  `<p id="target"><i>3x3x3</i> Cube <b>OH</b></p>`,
			first: "3x3x3",
			full:  "3x3x3 Cube OH",
		},
		{
			name:  "whitespace first",
			html:  "<p id=\"target\">\n  <a>Male</a></p>",
			first: "\n  ",
			full:  "\n  Male",
		},
		{
			name:  "empty",
			html:  `<p id="target"><span></span></p>`,
			first: "",
			full:  "",
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			doc := parseFragment(t, test.html)
			node := doc.Find("#target").Nodes[0]
			require.Equal(t, test.first, FirstText(node))
			require.Equal(t, test.full, GetText(node))
		})
	}
}

func TestFirstTextNil(t *testing.T) {
	require.Equal(t, "", FirstText(nil))
	require.Equal(t, "", GetText(nil))
}

func TestTrimmedTexts(t *testing.T) {
	doc := parseFragment(t, `<ul><li> a </li><li><i></i>  b<b>c</b> </li><li></li></ul>`)
	sel := doc.Find("li")

	require.Equal(t, []string{"a", "b", ""}, TrimmedTexts(sel, FirstText))
	require.Equal(t, []string{"a", "bc", ""}, TrimmedTexts(sel, GetText))
	require.Empty(t, TrimmedTexts(doc.Find("table"), GetText))
}
