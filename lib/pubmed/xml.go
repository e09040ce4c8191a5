package pubmed

import (
	"encoding/xml"
	"strings"
)

type esearchResult struct {
	XMLName xml.Name `xml:"eSearchResult"`
	IDs     []string `xml:"IdList>Id"`
}

type articleSet struct {
	XMLName  xml.Name        `xml:"PubmedArticleSet"`
	Articles []pubmedArticle `xml:"PubmedArticle"`
}

type pubmedArticle struct {
	PMID         string         `xml:"MedlineCitation>PMID"`
	Title        string         `xml:"MedlineCitation>Article>ArticleTitle"`
	Abstract     []abstractText `xml:"MedlineCitation>Article>Abstract>AbstractText"`
	Authors      []author       `xml:"MedlineCitation>Article>AuthorList>Author"`
	Journal      string         `xml:"MedlineCitation>Article>Journal>Title"`
	PubDate      pubDate        `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	ELocationIDs []eLocationID  `xml:"MedlineCitation>Article>ELocationID"`
}

type abstractText struct {
	Label string `xml:"Label,attr"`
	Text  string `xml:",chardata"`
}

type author struct {
	LastName string `xml:"LastName"`
	ForeName string `xml:"ForeName"`
}

type pubDate struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

type eLocationID struct {
	EIdType string `xml:"EIdType,attr"`
	Value   string `xml:",chardata"`
}

func parseArticles(body []byte) ([]Paper, error) {
	var set articleSet
	if err := xml.Unmarshal(body, &set); err != nil {
		return nil, err
	}

	papers := make([]Paper, 0, len(set.Articles))
	for _, article := range set.Articles {
		papers = append(papers, article.toPaper())
	}
	return papers, nil
}

func (a pubmedArticle) toPaper() Paper {
	paper := Paper{
		PMID:    a.PMID,
		Title:   a.Title,
		Journal: a.Journal,
	}

	// structured abstracts keep their section labels, e.g. "BACKGROUND: ..."
	var abstractParts []string
	for _, section := range a.Abstract {
		text := strings.TrimSpace(section.Text)
		if text == "" {
			continue
		}
		if section.Label != "" {
			abstractParts = append(abstractParts, section.Label+": "+text)
		} else {
			abstractParts = append(abstractParts, text)
		}
	}
	paper.Abstract = strings.Join(abstractParts, " ")

	for _, author := range a.Authors {
		if author.LastName == "" || author.ForeName == "" {
			continue
		}
		paper.Authors = append(paper.Authors, author.ForeName+" "+author.LastName)
	}

	var dateParts []string
	for _, part := range []string{a.PubDate.Year, a.PubDate.Month, a.PubDate.Day} {
		if part != "" {
			dateParts = append(dateParts, part)
		}
	}
	paper.PublicationDate = strings.Join(dateParts, "-")

	for _, loc := range a.ELocationIDs {
		if loc.EIdType == "doi" {
			paper.DOI = strings.TrimSpace(loc.Value)
			break
		}
	}

	paper.URL = "https://pubmed.ncbi.nlm.nih.gov/" + paper.PMID + "/"

	return paper
}
