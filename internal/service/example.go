package service

import (
	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/repository"
)

type ExampleService struct {
	repo repository.ExampleRepositoryInterface
}

func NewExampleServiceWithRepo(repo repository.ExampleRepositoryInterface) *ExampleService {
	return &ExampleService{repo: repo}
}

func NewExampleService() *ExampleService {
	return NewExampleServiceWithRepo(repository.NewExampleRepository())
}

func (s *ExampleService) List(userID string) ([]*model.Example, error) {
	return s.repo.List(userID)
}

func (s *ExampleService) Get(userID, id string) (*model.Example, error) {
	return s.repo.GetByID(userID, id)
}

func (s *ExampleService) Create(userID string, req *model.ExampleRequest) (*model.Example, error) {
	example := &model.Example{
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.repo.Create(example); err != nil {
		return nil, err
	}
	return example, nil
}

func (s *ExampleService) Update(userID, id string, req *model.ExampleRequest) (*model.Example, error) {
	return s.repo.Update(userID, id, req.Content)
}

func (s *ExampleService) Delete(userID, id string) error {
	return s.repo.Delete(userID, id)
}
