package service

import (
	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/repository"
)

type ItemService struct {
	repo repository.ItemRepositoryInterface
}

func NewItemServiceWithRepo(repo repository.ItemRepositoryInterface) *ItemService {
	return &ItemService{repo: repo}
}

func NewItemService() *ItemService {
	return NewItemServiceWithRepo(repository.NewItemRepository())
}

func (s *ItemService) List(userID string) ([]*model.Item, error) {
	return s.repo.List(userID)
}

func (s *ItemService) Get(userID, id string) (*model.Item, error) {
	return s.repo.GetByID(userID, id)
}

func (s *ItemService) Search(userID, query string) ([]*model.Item, error) {
	if query == "" {
		return s.repo.List(userID)
	}
	return s.repo.Search(userID, query)
}

func (s *ItemService) Create(userID string, req *model.ItemRequest) (*model.Item, error) {
	item := &model.Item{
		UserID: userID,
		Title:  req.Title,
		Notes:  req.Notes,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ItemService) Update(userID, id string, req *model.ItemRequest) (*model.Item, error) {
	return s.repo.Update(userID, id, req.Title, req.Notes)
}

func (s *ItemService) Delete(userID, id string) error {
	return s.repo.Delete(userID, id)
}
