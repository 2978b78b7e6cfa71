package organizationservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/coursemarket/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func TestGetLeastActiveOrganization(t *testing.T) {
	product, course := uuid.New(), uuid.New()
	busy, idle, author, other := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name        string
		loads       []domain.OrganizationLoad
		repoErr     error
		pick        int
		expected    *uuid.UUID
		expectedErr bool
	}{
		{
			name:     "No relation",
			loads:    nil,
			expected: nil,
		},
		{
			name: "Least loaded wins",
			loads: []domain.OrganizationLoad{
				{OrganizationID: busy, IsAuthor: true, Orders: 5},
				{OrganizationID: idle, Orders: 1},
			},
			expected: &idle,
		},
		{
			name: "Author wins a tie",
			loads: []domain.OrganizationLoad{
				{OrganizationID: other, Orders: 2},
				{OrganizationID: author, IsAuthor: true, Orders: 2},
				{OrganizationID: busy, Orders: 7},
			},
			expected: &author,
		},
		{
			name: "Random among tied non authors",
			loads: []domain.OrganizationLoad{
				{OrganizationID: idle, Orders: 0},
				{OrganizationID: other, Orders: 0},
				{OrganizationID: busy, Orders: 3},
			},
			pick:     1,
			expected: &other,
		},
		{
			name:        "Repository error",
			repoErr:     errors.New("database error"),
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			service.intn = func(n int) int {
				require.Equal(t, 2, n)
				return tt.pick
			}
			repo.EXPECT().Loads(gomock.Any(), product, course, domain.OrganizationLoadStates()).Return(tt.loads, tt.repoErr)

			result, err := service.GetLeastActiveOrganization(context.Background(), product, course)
			if tt.expectedErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetLeastActiveOrganization_AlwaysRelated(t *testing.T) {
	product, course := uuid.New(), uuid.New()
	related := map[uuid.UUID]bool{}
	var loads []domain.OrganizationLoad
	for i := 0; i < 5; i++ {
		id := uuid.New()
		related[id] = true
		loads = append(loads, domain.OrganizationLoad{OrganizationID: id, Orders: i % 2})
	}

	service, repo := NewMock(t)
	repo.EXPECT().Loads(gomock.Any(), product, course, gomock.Any()).Return(loads, nil).Times(20)

	for i := 0; i < 20; i++ {
		result, err := service.GetLeastActiveOrganization(context.Background(), product, course)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, related[*result])
	}
}

func TestListByProduct(t *testing.T) {
	service, repo := NewMock(t)
	product := uuid.New()
	organizations := []domain.Organization{{ID: uuid.New(), Code: "UNIV", Title: "University"}}

	repo.EXPECT().ListByProduct(gomock.Any(), product).Return(organizations, nil)
	result, err := service.ListByProduct(context.Background(), product)
	require.NoError(t, err)
	assert.Equal(t, organizations, result)

	repo.EXPECT().ListByProduct(gomock.Any(), product).Return(nil, errors.New("database error"))
	_, err = service.ListByProduct(context.Background(), product)
	assert.Error(t, err)
}
