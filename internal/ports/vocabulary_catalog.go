package ports

import "github.com/aalvaropc/vilain/internal/domain"

// VocabularyCatalog lists and loads vocabularies by name.
type VocabularyCatalog interface {
	ListVocabularies(root string) ([]domain.VocabularyRef, error)
	LoadVocabulary(path string) (domain.Vocabulary, error)
}
