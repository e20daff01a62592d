package inquiry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, i *Inquiry) error {
	args := m.Called(ctx, i)
	if args.Error(0) == nil {
		i.ID = 11
	}
	return args.Error(0)
}

func (m *MockRepository) List(ctx context.Context) ([]Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Inquiry), args.Error(1)
}

func TestSubmit_CopiesFieldsVerbatim(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(i *Inquiry) bool {
		return i.Name == "Jo" && i.Phone == "555" && i.Message == "hi"
	})).Return(nil).Once()

	got, err := svc.Submit(context.Background(), SubmitInquiryRequest{Name: "Jo", Phone: "555", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	repo.AssertExpectations(t)
}

func TestSubmit_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	_, err := svc.Submit(context.Background(), SubmitInquiryRequest{})
	assert.Error(t, err)
}
