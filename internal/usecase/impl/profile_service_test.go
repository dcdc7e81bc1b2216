package impl

import (
	"context"
	"testing"

	"jobportal/internal/domain/entity"
	domainerrors "jobportal/internal/domain/errors"
	"jobportal/internal/domain/repository"
	mockRepo "jobportal/internal/mocks/repository"
	mockSvc "jobportal/internal/mocks/service"
	"jobportal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenService *mockSvc.MockTokenService
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenService: tokenService,
		Validator:    newTestValidator(),
		Logger:       newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

func (fx profileServiceFixtures) txUserRepo(t *testing.T) *mockRepo.MockUserRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().UserRepo().Return(txRepo)
	expectTransaction(fx.txManager, factory)

	return txRepo
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{
		ID:           userID,
		Name:         "Ann",
		Email:        "ann@example.com",
		PasswordHash: "hashed",
		Location:     entity.DefaultLocation,
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user.Public(), profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	profile, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	existing := &entity.User{
		ID:           userID,
		Name:         "Ann",
		LastName:     "Lee",
		Email:        "ann@example.com",
		PasswordHash: "hashed",
		Location:     entity.DefaultLocation,
	}

	txRepo := fx.txUserRepo(t)
	txRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
	txRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "ann@example.com", user.Email)
			assert.Equal(t, "hashed", user.PasswordHash)
		}).
		Return(nil)
	fx.tokenService.EXPECT().GenerateToken(userID).Return("fresh-token", nil)

	output, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Name:     stringPtr(" Anna "),
		Location: stringPtr("Mumbai"),
	})

	require.NoError(t, err)
	assert.Equal(t, "fresh-token", output.Token)
	assert.Equal(t, "Anna", output.User.Name)
	assert.Equal(t, "Lee", output.User.LastName)
	assert.Equal(t, "Mumbai", output.User.Location)
	assert.Equal(t, "ann@example.com", output.User.Email)
}

func TestProfileService_UpdateProfile_UserGone(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	txRepo := fx.txUserRepo(t)
	txRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: stringPtr("Anna")})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_BlankName(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{Name: stringPtr("   ")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_UpdateProfile_TokenFailure(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	txRepo := fx.txUserRepo(t)
	txRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Ann"}, nil)
	txRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	fx.tokenService.EXPECT().GenerateToken(userID).Return("", errors.New("signing failed"))

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Location: stringPtr("Delhi")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenIssueFailed))
}
