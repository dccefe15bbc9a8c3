package services

import (
	"context"
	"errors"

	"kartoteka.link/models"
	"kartoteka.link/repositories"
)

// SetServiceError özel servis hataları
type SetServiceError string

func (e SetServiceError) Error() string { return string(e) }

const ErrSetNotFound SetServiceError = "set bulunamadı"

// SetNode set listesi sayfası için ebeveyn-çocuk ağacının bir düğümü.
type SetNode struct {
	Set      models.Set
	Children []*SetNode
}

// Ana sayfada gösterilen güncel set sayısı.
const recentSetsLimit = 6

// ISetService set okuma işlemleri için arayüz.
type ISetService interface {
	GetSetTree(ctx context.Context) ([]*SetNode, error)
	GetRecentSets(ctx context.Context) ([]models.Set, error)
	GetSetByCode(ctx context.Context, code string) (*models.Set, error)
}

// SetService ISetService arayüzünü uygular.
type SetService struct {
	repo repositories.ISetRepository
}

// NewSetService yeni bir SetService örneği oluşturur.
func NewSetService() ISetService {
	return &SetService{repo: repositories.NewSetRepository()}
}

// GetSetTree tüm setleri çıkış tarihine göre sıralı bir ağaç olarak
// döndürür. Ebeveyni olmayan setler kök düğümdür.
func (s *SetService) GetSetTree(ctx context.Context) ([]*SetNode, error) {
	sets, err := s.repo.GetAllSets(ctx)
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*SetNode, len(sets))
	for _, set := range sets {
		nodes[set.ID] = &SetNode{Set: set}
	}

	var roots []*SetNode
	for _, set := range sets {
		node := nodes[set.ID]
		if set.ParentSetID != nil {
			if parent, ok := nodes[*set.ParentSetID]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}
	return roots, nil
}

// GetRecentSets ana sayfa vitrini için son çıkan setleri döndürür.
func (s *SetService) GetRecentSets(ctx context.Context) ([]models.Set, error) {
	return s.repo.GetRecentSets(ctx, recentSetsLimit)
}

// GetSetByCode seti koduyla getirir.
func (s *SetService) GetSetByCode(ctx context.Context, code string) (*models.Set, error) {
	set, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	return set, nil
}

var _ ISetService = (*SetService)(nil)
