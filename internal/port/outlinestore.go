package port

import "csmap/internal/domain"

type OutlineStore interface {
	PutOutline(outline domain.FileOutline) error

	GetOutline(path string) (domain.FileOutline, error)

	DeleteOutline(path string) error

	ListOutlines() ([]domain.FileOutline, error)

	GetStats() (domain.Stats, error)

	UpdateStats(stats domain.Stats) error

	Close() error
}
