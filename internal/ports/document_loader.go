package ports

import "github.com/aalvaropc/vilain/internal/domain"

// DocumentLoader loads declarative documents from a source (e.g., filesystem).
type DocumentLoader interface {
	LoadDocument(kind domain.DocumentKind, path string) (domain.Document, error)
	ListDocuments(kind domain.DocumentKind, root string) ([]domain.DocumentRef, error)
}
