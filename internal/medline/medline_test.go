// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package medline

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/medline-tsv/pkg/types"
)

const pubmedArticle = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE PubmedArticleSet PUBLIC "-//NLM//DTD PubMedArticle, 1st January 2019//EN" "https://dtd.nlm.nih.gov/ncbi/pubmed/out/pubmed_190101.dtd">
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation Status="MEDLINE" Owner="NLM">
      <PMID Version="1">31452104</PMID>
      <Article PubModel="Print">
        <Journal>
          <JournalIssue CitedMedium="Internet">
            <Volume>12</Volume>
            <PubDate>
              <Year>2019</Year>
              <Month>Aug</Month>
            </PubDate>
          </JournalIssue>
          <Title>Nature communications</Title>
        </Journal>
        <ArticleTitle>
          Single-cell transcriptomics of the human retina.
        </ArticleTitle>
      </Article>
      <CommentsCorrectionsList>
        <CommentsCorrections RefType="CommentIn">
          <PMID Version="1">30000001</PMID>
        </CommentsCorrections>
      </CommentsCorrectionsList>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>
`

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want types.ArticleRecord
	}{
		{
			name: "full PubmedArticle",
			xml:  pubmedArticle,
			want: types.ArticleRecord{
				PMID:  "31452104",
				Year:  "2019",
				Title: "Single-cell transcriptomics of the human retina.",
			},
		},
		{
			name: "minimal article",
			xml: `<PubmedArticle><MedlineCitation><PMID>12345</PMID><Article>
				<Journal><JournalIssue><PubDate><Year>2020</Year></PubDate></JournalIssue></Journal>
				<ArticleTitle>Foo</ArticleTitle></Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "12345", Year: "2020", Title: "Foo"},
		},
		{
			name: "MedlineDate fallback",
			xml: `<PubmedArticle><MedlineCitation><PMID>1</PMID><Article>
				<Journal><JournalIssue><PubDate><MedlineDate>2019 Jan-Feb</MedlineDate></PubDate></JournalIssue></Journal>
				</Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "1", Year: "2019"},
		},
		{
			name: "MedlineDate range takes first year",
			xml: `<PubmedArticle><MedlineCitation><PMID>2</PMID><Article>
				<Journal><JournalIssue><PubDate><MedlineDate>Winter 1998-2001</MedlineDate></PubDate></JournalIssue></Journal>
				</Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "2", Year: "1998"},
		},
		{
			name: "MedlineDate without plausible year",
			xml: `<PubmedArticle><MedlineCitation><PMID>3</PMID><Article>
				<Journal><JournalIssue><PubDate><MedlineDate>Spring 1850</MedlineDate></PubDate></JournalIssue></Journal>
				</Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "3"},
		},
		{
			name: "blank Year falls back to MedlineDate",
			xml: `<PubmedArticle><MedlineCitation><PMID>4</PMID><Article>
				<Journal><JournalIssue><PubDate><Year>  </Year><MedlineDate>2001 Dec</MedlineDate></PubDate></JournalIssue></Journal>
				</Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "4", Year: "2001"},
		},
		{
			name: "no PubDate",
			xml:  `<PubmedArticle><MedlineCitation><PMID>5</PMID><Article><ArticleTitle>T</ArticleTitle></Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "5", Title: "T"},
		},
		{
			name: "PubDate outside Article path is ignored",
			xml: `<PubmedArticle><MedlineCitation><PMID>6</PMID>
				<JournalIssue><PubDate><Year>1999</Year></PubDate></JournalIssue></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "6"},
		},
		{
			name: "title stops at inline markup",
			xml: `<PubmedArticle><MedlineCitation><PMID>7</PMID><Article>
				<ArticleTitle>Role of <i>TP53</i> in sensing</ArticleTitle></Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "7", Title: "Role of"},
		},
		{
			name: "byte order mark before prolog",
			xml: "\ufeff<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n" +
				"<PubmedArticle><MedlineCitation><PMID>1</PMID><Article><ArticleTitle>BOM</ArticleTitle></Article></MedlineCitation></PubmedArticle>",
			want: types.ArticleRecord{PMID: "1", Title: "BOM"},
		},
		{
			name: "byte order mark without prolog",
			xml:  "\ufeff<PubmedArticle><MedlineCitation><PMID>1</PMID></MedlineCitation></PubmedArticle>",
			want: types.ArticleRecord{PMID: "1"},
		},
		{
			name: "MedlineDate year joined to a letter is skipped",
			xml: `<PubmedArticle><MedlineCitation><PMID>12</PMID><Article>
				<Journal><JournalIssue><PubDate><MedlineDate>2019年 Spring</MedlineDate></PubDate></JournalIssue></Journal>
				</Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "12"},
		},
		{
			name: "MedlineDate takes the first standalone year",
			xml: `<PubmedArticle><MedlineCitation><PMID>13</PMID><Article>
				<Journal><JournalIssue><PubDate><MedlineDate>2018年; 2020 Fall</MedlineDate></PubDate></JournalIssue></Journal>
				</Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "13", Year: "2020"},
		},
		{
			name: "root MedlineCitation uses bare PMID fallback",
			xml:  `<MedlineCitation><PMID>8</PMID><Article><ArticleTitle>Root</ArticleTitle></Article></MedlineCitation>`,
			want: types.ArticleRecord{PMID: "8", Title: "Root"},
		},
		{
			name: "bare PMID without MedlineCitation",
			xml:  `<Record><Meta><PMID> 9 </PMID></Meta></Record>`,
			want: types.ArticleRecord{PMID: "9"},
		},
		{
			name: "empty citation PMID falls back to next PMID",
			xml: `<PubmedArticle><MedlineCitation><PMID></PMID></MedlineCitation>
				<PubmedData><ArticleIdList><PMID>10</PMID></ArticleIdList></PubmedData></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "10"},
		},
		{
			name: "no PMID anywhere",
			xml:  `<PubmedArticle><MedlineCitation><Article><ArticleTitle>Orphan</ArticleTitle></Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{Title: "Orphan"},
		},
		{
			name: "entities are decoded",
			xml:  `<PubmedArticle><MedlineCitation><PMID>11</PMID><Article><ArticleTitle>A &amp; B &lt;C&gt;</ArticleTitle></Article></MedlineCitation></PubmedArticle>`,
			want: types.ArticleRecord{PMID: "11", Title: "A & B <C>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.xml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{name: "empty document", xml: ""},
		{name: "whitespace only", xml: "  \n "},
		{name: "unclosed element", xml: "<PubmedArticle><PMID>1</PMID>"},
		{name: "mismatched tags", xml: "<PubmedArticle><PMID>1</Title></PubmedArticle>"},
		{name: "second root element", xml: "<a></a><b></b>"},
		{name: "text after root", xml: "<a></a>trailing"},
		{name: "text before root", xml: "leading<a></a>"},
		{name: "undefined entity", xml: "<a>&nbsp;</a>"},
		{name: "not XML", xml: "PMID,year,title\n1,2020,Foo\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.xml))
			require.Error(t, err)
			var pe *ParseError
			assert.True(t, errors.As(err, &pe), "want *ParseError, got %T", err)
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "article-data-1.xml")
	require.NoError(t, os.WriteFile(path, []byte(pubmedArticle), 0o644))

	got, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "31452104", got.PMID)
	assert.Equal(t, "2019", got.Year)
}

func TestParseFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article-data-missing.xml")

	_, err := ParseFile(path)
	require.Error(t, err)

	var re *ReadError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, path, re.Path)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article-data-bad.xml")
	require.NoError(t, os.WriteFile(path, []byte("<PubmedArticle><PMID>1"), 0o644))

	_, err := ParseFile(path)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Contains(t, err.Error(), path)
}

func TestParse_Latin1(t *testing.T) {
	// "Caf\xe9" is "Café" in ISO-8859-1.
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?>" +
		"<PubmedArticle><MedlineCitation><PMID>42</PMID><Article>" +
		"<ArticleTitle>Caf\xe9 culture</ArticleTitle></Article></MedlineCitation></PubmedArticle>"

	got, err := Parse(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "Café culture", got.Title)
}

func TestParse_UnknownCharset(t *testing.T) {
	doc := `<?xml version="1.0" encoding="x-no-such-charset"?><a/>`
	_, err := Parse(strings.NewReader(doc))
	require.Error(t, err)
}
