package service

import (
	"testing"

	"trade-compliance/internal/features/reference/adapters"
	"trade-compliance/internal/features/reference/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProfileStore is a mock implementation of ports.ProfileStore
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Profile(key string) (domain.CountryProfile, bool) {
	args := m.Called(key)
	return args.Get(0).(domain.CountryProfile), args.Bool(1)
}

func (m *MockProfileStore) Profiles() []domain.CountryProfile {
	return m.Called().Get(0).([]domain.CountryProfile)
}

func (m *MockProfileStore) Bilateral() domain.BilateralContext {
	return m.Called().Get(0).(domain.BilateralContext)
}

func newDefaultService(t *testing.T) *ReferenceService {
	t.Helper()
	store, err := adapters.DefaultProfileStore()
	require.NoError(t, err)
	return NewReferenceService(store)
}

func TestReferenceService_Country(t *testing.T) {
	svc := newDefaultService(t)

	t.Run("CaseInsensitive", func(t *testing.T) {
		profile, err := svc.Country(" Italy ")
		require.NoError(t, err)
		assert.Equal(t, "Rome", profile.General.Capital)
	})

	t.Run("NotFound", func(t *testing.T) {
		profile, err := svc.Country("Atlantis")
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, domain.ErrCountryNotFound)
		assert.Contains(t, err.Error(), "Atlantis")
	})
}

func TestReferenceService_Compare(t *testing.T) {
	svc := newDefaultService(t)

	t.Run("Success", func(t *testing.T) {
		cmp, err := svc.Compare("italy", "INDIA")
		require.NoError(t, err)

		metrics := cmp.Metrics()
		require.Len(t, metrics, 5)
		assert.Equal(t, domain.Metric{Name: "Currency", Left: "Euro (EUR)", Right: "Indian Rupee (INR)"}, metrics[0])
		assert.Equal(t, domain.Metric{Name: "EU Member", Left: "Yes", Right: "No"}, metrics[1])
		assert.Equal(t, domain.Metric{Name: "Ease of Business Rank", Left: "58", Right: "63"}, metrics[2])
		assert.Equal(t, domain.Metric{Name: "LPI Score", Left: "3.8", Right: "3.2"}, metrics[3])
		assert.Equal(t, "22%", metrics[4].Left)
	})

	t.Run("UnknownCountry", func(t *testing.T) {
		for _, pair := range [][2]string{{"italy", "peru"}, {"peru", "india"}} {
			cmp, err := svc.Compare(pair[0], pair[1])
			assert.Nil(t, cmp)
			assert.ErrorIs(t, err, domain.ErrCountryNotFound)
		}
	})
}

func TestReferenceService_DelegatesToStore(t *testing.T) {
	store := new(MockProfileStore)
	bilateral := domain.BilateralContext{TradeAgreement: "WTO MFN"}
	profiles := []domain.CountryProfile{{Key: "japan"}}

	store.On("Profiles").Return(profiles).Once()
	store.On("Bilateral").Return(bilateral).Once()
	store.On("Profile", "japan").Return(profiles[0], true).Once()

	svc := NewReferenceService(store)

	assert.Equal(t, profiles, svc.Countries())
	assert.Equal(t, bilateral, svc.Bilateral())
	profile, err := svc.Country("JAPAN")
	require.NoError(t, err)
	assert.Equal(t, "japan", profile.Key)
	store.AssertExpectations(t)
}

func TestDocumentRequirement_Status(t *testing.T) {
	assert.Equal(t, "Required", domain.DocumentRequirement{Required: true}.Status())
	assert.Equal(t, "Not Required", domain.DocumentRequirement{}.Status())
	assert.Equal(t, "EUR.1", domain.DocumentRequirement{Required: true, Note: "EUR.1"}.Status())
}
