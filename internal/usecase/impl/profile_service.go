package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"beautymarket/config"
	deliverycontext "beautymarket/internal/delivery/context"
	"beautymarket/internal/domain/entity"
	domainerrors "beautymarket/internal/domain/errors"
	"beautymarket/internal/domain/repository"
	"beautymarket/internal/domain/service"
	"beautymarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	kycRepo     repository.KYCRepository
	hasher      service.PasswordHasher
	minimumAge  int
	tokenTTL    time.Duration
	now         func() time.Time
	newToken    func() string
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	KYCRepo     repository.KYCRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		profileRepo: params.ProfileRepo,
		kycRepo:     params.KYCRepo,
		hasher:      params.Hasher,
		minimumAge:  params.Config.Verification.MinimumAge,
		tokenTTL:    params.Config.Verification.TokenTTL,
		now:         time.Now,
		newToken:    randomVerificationToken,
		logger:      params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the account overview, creating the profile on first access.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*usecase.ProfileOutput, error) {
	srv.log(ctx).Debug("Getting user profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	profile, err := srv.profileOrCreate(ctx, srv.profileRepo, user)
	if err != nil {
		return nil, err
	}

	output := &usecase.ProfileOutput{User: user, Profile: profile}

	kyc, err := srv.kycRepo.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		output.KYC = kyc
	case !errors.Is(err, repository.ErrKYCNotFound):
		return nil, errors.Wrap(err, "failed to find kyc")
	}

	verification, err := srv.profileRepo.FindVerification(ctx, userID)
	switch {
	case err == nil:
		output.Verification = verification
	case !errors.Is(err, repository.ErrVerificationNotFound):
		return nil, errors.Wrap(err, "failed to find verification")
	}

	return output, nil
}

func (srv *accountService) profileOrCreate(ctx context.Context, profileRepo repository.ProfileRepository, user *entity.User) (*entity.UserProfile, error) {
	profile, err := profileRepo.FindProfile(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	profile = &entity.UserProfile{UserID: user.ID, DisplayName: user.Username}
	if err := profileRepo.SaveProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// UpdateProfile changes display name and bio. Nil fields are kept.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	srv.log(ctx).Info("Updating user profile", slog.Any("userID", userID))

	return srv.mutateProfile(ctx, userID, func(profile *entity.UserProfile) {
		if input.DisplayName != nil {
			profile.DisplayName = strings.TrimSpace(*input.DisplayName)
		}
		if input.Bio != nil {
			profile.Bio = strings.TrimSpace(*input.Bio)
		}
	})
}

// UpdateAvatar stores a new avatar URL.
func (srv *accountService) UpdateAvatar(ctx context.Context, userID uuid.UUID, avatarURL string) (*entity.UserProfile, error) {
	if strings.TrimSpace(avatarURL) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("avatar_url is required")
	}

	return srv.mutateProfile(ctx, userID, func(profile *entity.UserProfile) {
		profile.AvatarURL = avatarURL
	})
}

func (srv *accountService) mutateProfile(ctx context.Context, userID uuid.UUID, apply func(*entity.UserProfile)) (*entity.UserProfile, error) {
	var profile *entity.UserProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		profileRepo := repoFactory.ProfileRepo()
		profile, err = srv.profileOrCreate(ctx, profileRepo, user)
		if err != nil {
			return err
		}

		apply(profile)

		if err := profileRepo.SaveProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to save profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// ChangePassword replaces the email login password and signs the user out everywhere.
func (srv *accountService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	srv.log(ctx).Info("Changing password", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		auth, err := authRepo.FindAuthenticationByUserIDAndProvider(ctx, userID, entity.ProviderTypeEmail)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return domainerrors.ErrValidationFailed.WrapMessage("account has no password login")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		if !srv.hasher.Check(input.OldPassword, auth.PasswordHash) {
			return errors.Wrap(domainerrors.ErrPasswordMismatch, "old password does not match")
		}

		if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
			return err
		}

		hashed, err := srv.hasher.Hash(input.NewPassword)
		if err != nil {
			return errors.Wrap(err, "failed to hash new password")
		}
		auth.PasswordHash = hashed

		if err := authRepo.UpdateAuthentication(ctx, auth); err != nil {
			return errors.Wrap(err, "failed to update authentication")
		}

		return repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID)
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to change password")
	}

	return nil
}

// SubmitKYC records the documents and puts the submission in the review queue.
func (srv *accountService) SubmitKYC(ctx context.Context, userID uuid.UUID, input *usecase.SubmitKYCInput) (*entity.UserKYC, error) {
	idDocument := strings.TrimSpace(input.IDDocumentURL)
	selfie := strings.TrimSpace(input.SelfieURL)
	if idDocument == "" || selfie == "" {
		return nil, errors.WithStack(domainerrors.ErrKYCDocumentsRequired)
	}

	var kyc *entity.UserKYC

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		kycRepo := repoFactory.KYCRepo()

		var err error
		kyc, err = kycRepo.FindByUserID(ctx, userID)
		switch {
		case errors.Is(err, repository.ErrKYCNotFound):
			kyc = &entity.UserKYC{UserID: userID}
		case err != nil:
			return errors.Wrap(err, "failed to find kyc")
		case kyc.Status == entity.KYCStatusVerified:
			return errors.Wrap(domainerrors.ErrKYCAlreadyVerified, "kyc already verified")
		}

		submittedAt := srv.now()
		kyc.IDDocumentURL = idDocument
		kyc.SelfieURL = selfie
		kyc.Status = entity.KYCStatusPending
		kyc.RejectionReason = ""
		kyc.SubmittedAt = &submittedAt
		kyc.ReviewedAt = nil
		kyc.ReviewedBy = nil

		return kycRepo.Save(ctx, kyc)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to submit kyc")
	}

	srv.log(ctx).Info("KYC submitted", slog.Any("userID", userID))

	return kyc, nil
}

// GetKYCStatus returns the KYC record, creating a pending one on first access.
func (srv *accountService) GetKYCStatus(ctx context.Context, userID uuid.UUID) (*entity.UserKYC, error) {
	kyc, err := srv.kycRepo.FindByUserID(ctx, userID)
	if err == nil {
		return kyc, nil
	}
	if !errors.Is(err, repository.ErrKYCNotFound) {
		return nil, errors.Wrap(err, "failed to find kyc")
	}

	kyc = &entity.UserKYC{UserID: userID, Status: entity.KYCStatusPending}
	if err := srv.kycRepo.Save(ctx, kyc); err != nil {
		return nil, errors.Wrap(err, "failed to create kyc")
	}

	return kyc, nil
}

// RequestAgeVerification issues a fresh token, replacing any outstanding one.
func (srv *accountService) RequestAgeVerification(ctx context.Context, userID uuid.UUID) (*usecase.AgeVerificationRequest, error) {
	verification, err := srv.verificationOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}

	expiresAt := srv.now().Add(srv.tokenTTL)
	verification.VerificationToken = srv.newToken()
	verification.TokenExpiresAt = &expiresAt

	if err := srv.profileRepo.SaveVerification(ctx, verification); err != nil {
		return nil, errors.Wrap(err, "failed to save verification token")
	}

	srv.log(ctx).Info("Age verification requested", slog.Any("userID", userID))

	return &usecase.AgeVerificationRequest{Token: verification.VerificationToken, ExpiresAt: expiresAt}, nil
}

// ConfirmAgeVerification checks the token and the claimed birth date.
func (srv *accountService) ConfirmAgeVerification(ctx context.Context, userID uuid.UUID, input *usecase.ConfirmAgeInput) (*entity.UserVerification, error) {
	now := srv.now()
	if input.DateOfBirth.IsZero() || input.DateOfBirth.After(now) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("date_of_birth must be a past date")
	}

	var verification *entity.UserVerification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()

		var err error
		verification, err = profileRepo.FindVerification(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrVerificationNotFound) {
				return errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "no verification requested")
			}

			return errors.Wrap(err, "failed to find verification")
		}

		if !verification.TokenValid(input.Token, now) {
			return errors.Wrap(domainerrors.ErrVerificationTokenInvalid, "token mismatch or expired")
		}

		if entity.AgeOn(input.DateOfBirth, now) < srv.minimumAge {
			return errors.Wrap(domainerrors.ErrUnderage, "below minimum age")
		}

		verification.AgeVerified = true
		verification.AgeVerifiedAt = &now
		verification.VerificationToken = ""
		verification.TokenExpiresAt = nil
		if err := profileRepo.SaveVerification(ctx, verification); err != nil {
			return errors.Wrap(err, "failed to save verification")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		profile, err := srv.profileOrCreate(ctx, profileRepo, user)
		if err != nil {
			return err
		}
		dob := entity.DateOf(input.DateOfBirth)
		profile.DateOfBirth = &dob

		return profileRepo.SaveProfile(ctx, profile)
	})
	if err != nil {
		srv.log(ctx).Warn("Age verification failed", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to confirm age verification")
	}

	return verification, nil
}

// GetAgeVerification returns the verification record, creating it on first access.
func (srv *accountService) GetAgeVerification(ctx context.Context, userID uuid.UUID) (*entity.UserVerification, error) {
	verification, err := srv.profileRepo.FindVerification(ctx, userID)
	if err == nil {
		return verification, nil
	}
	if !errors.Is(err, repository.ErrVerificationNotFound) {
		return nil, errors.Wrap(err, "failed to find verification")
	}

	verification = &entity.UserVerification{UserID: userID}
	if err := srv.profileRepo.SaveVerification(ctx, verification); err != nil {
		return nil, errors.Wrap(err, "failed to create verification")
	}

	return verification, nil
}

func (srv *accountService) verificationOrNew(ctx context.Context, userID uuid.UUID) (*entity.UserVerification, error) {
	verification, err := srv.profileRepo.FindVerification(ctx, userID)
	if err == nil {
		return verification, nil
	}
	if errors.Is(err, repository.ErrVerificationNotFound) {
		return &entity.UserVerification{UserID: userID}, nil
	}

	return nil, errors.Wrap(err, "failed to find verification")
}

func randomVerificationToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
