package ports

import "github.com/aalvaropc/vilain/internal/domain"

// BoxSetLoader loads normalized fixed boxes.
type BoxSetLoader interface {
	ListBoxSets(root string) ([]domain.BoxSetRef, error)
	LoadBoxes(path string) ([]domain.Box, error)
}
