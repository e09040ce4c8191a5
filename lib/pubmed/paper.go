package pubmed

// Paper is one bibliographic record returned by the search backend.
type Paper struct {
	PMID            string   `json:"pmid"`
	Title           string   `json:"title"`
	Abstract        string   `json:"abstract"`
	Authors         []string `json:"authors"`
	Journal         string   `json:"journal"`
	PublicationDate string   `json:"publication_date"`
	DOI             string   `json:"doi"`
	URL             string   `json:"pubmed_url"`
}
