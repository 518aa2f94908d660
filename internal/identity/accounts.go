package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	identitytoolkit "google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

var ErrUserNotFound = errors.New("identity user not found")

var adminScopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/firebase",
}

// UserRecord - учетная запись у провайдера идентификации
type UserRecord struct {
	UID         string
	Email       string
	DisplayName string
	PhotoURL    string
	Disabled    bool
	CreatedAt   time.Time
}

// UserUpdate - nil-поля не меняются
type UserUpdate struct {
	DisplayName *string
	PhotoURL    *string
	Password    *string
	Disabled    *bool
}

// AccountManager - административные операции над учетными записями
type AccountManager interface {
	GetUser(ctx context.Context, uid string) (*UserRecord, error)
	UpdateUser(ctx context.Context, uid string, update UserUpdate) error
	DeleteUser(ctx context.Context, uid string) error
}

type AccountsConfig struct {
	CredentialsFile string
	// APIEndpoint переопределяет адрес (эмулятор)
	APIEndpoint string
}

// ToolkitAccountManager работает через Identity Toolkit REST API
// с учетными данными сервисного аккаунта.
type ToolkitAccountManager struct {
	svc *identitytoolkit.Service
}

func NewToolkitAccountManager(ctx context.Context, cfg AccountsConfig) (*ToolkitAccountManager, error) {
	var opts []option.ClientOption

	if cfg.CredentialsFile != "" {
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read identity credentials: %w", err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, adminScopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse identity credentials: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	} else {
		creds, err := google.FindDefaultCredentials(ctx, adminScopes...)
		if err != nil {
			return nil, fmt.Errorf("no identity credentials found: %w", err)
		}
		opts = append(opts, option.WithCredentials(creds))
	}

	if cfg.APIEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.APIEndpoint))
	}

	svc, err := identitytoolkit.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity toolkit client: %w", err)
	}
	return &ToolkitAccountManager{svc: svc}, nil
}

func (m *ToolkitAccountManager) GetUser(ctx context.Context, uid string) (*UserRecord, error) {
	resp, err := m.svc.Relyingparty.GetAccountInfo(&identitytoolkit.IdentitytoolkitRelyingpartyGetAccountInfoRequest{
		LocalId: []string{uid},
	}).Context(ctx).Do()
	if err != nil {
		return nil, translateToolkitError(err)
	}
	if len(resp.Users) == 0 {
		return nil, ErrUserNotFound
	}

	u := resp.Users[0]
	record := &UserRecord{
		UID:         u.LocalId,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoUrl,
		Disabled:    u.Disabled,
	}
	if u.CreatedAt > 0 {
		record.CreatedAt = time.UnixMilli(u.CreatedAt).UTC()
	}
	return record, nil
}

func (m *ToolkitAccountManager) UpdateUser(ctx context.Context, uid string, update UserUpdate) error {
	req := &identitytoolkit.IdentitytoolkitRelyingpartySetAccountInfoRequest{LocalId: uid}
	if update.DisplayName != nil {
		req.DisplayName = *update.DisplayName
	}
	if update.PhotoURL != nil {
		req.PhotoUrl = *update.PhotoURL
	}
	if update.Password != nil {
		req.Password = *update.Password
	}
	if update.Disabled != nil {
		req.DisableUser = *update.Disabled
		req.ForceSendFields = append(req.ForceSendFields, "DisableUser")
	}

	_, err := m.svc.Relyingparty.SetAccountInfo(req).Context(ctx).Do()
	return translateToolkitError(err)
}

func (m *ToolkitAccountManager) DeleteUser(ctx context.Context, uid string) error {
	_, err := m.svc.Relyingparty.DeleteAccount(&identitytoolkit.IdentitytoolkitRelyingpartyDeleteAccountRequest{
		LocalId: uid,
	}).Context(ctx).Do()
	return translateToolkitError(err)
}

func translateToolkitError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusNotFound || strings.Contains(gerr.Message, "USER_NOT_FOUND") {
			return ErrUserNotFound
		}
	}
	return fmt.Errorf("identity toolkit: %w", err)
}
