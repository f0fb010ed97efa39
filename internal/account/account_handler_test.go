package account_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-booking/internal/account"
	accounterrors "go-booking/internal/account/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeAccountService struct {
	registerFn       func(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error)
	loginFn          func(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error)
	forgetPasswordFn func(ctx context.Context, req account.ForgetPasswordRequest) error
	changePasswordFn func(ctx context.Context, req account.ChangePasswordRequest) error
}

func (f *fakeAccountService) Register(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAccountService) Login(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAccountService) ForgetPassword(ctx context.Context, req account.ForgetPasswordRequest) error {
	return f.forgetPasswordFn(ctx, req)
}

func (f *fakeAccountService) ChangePassword(ctx context.Context, req account.ChangePasswordRequest) error {
	return f.changePasswordFn(ctx, req)
}

func (f *fakeAccountService) GetAll(ctx context.Context) ([]account.AccountResponse, error) {
	return nil, nil
}

func (f *fakeAccountService) GetByGuid(ctx context.Context, guid string) (account.AccountResponse, error) {
	return account.AccountResponse{}, nil
}

func (f *fakeAccountService) Create(ctx context.Context, req account.CreateAccountRequest) (account.AccountResponse, error) {
	return account.AccountResponse{}, nil
}

func (f *fakeAccountService) Update(ctx context.Context, guid string, req account.UpdateAccountRequest) (account.AccountResponse, error) {
	return account.AccountResponse{}, nil
}

func (f *fakeAccountService) Delete(ctx context.Context, guid string) error { return nil }

func setupAuthRouter(svc account.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := account.NewHandler(svc)
	r := gin.New()
	auth := r.Group("/api/v1/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/forget-password", h.ForgetPassword)
	auth.POST("/change-password", h.ChangePassword)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAccountHandler_Register(t *testing.T) {
	t.Run("sukses mengembalikan 201 dengan envelope", func(t *testing.T) {
		svc := &fakeAccountService{
			registerFn: func(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
				return account.RegisterResponse{
					Guid:     "guid-1",
					Nik:      "111111",
					FullName: "Budi Santoso",
					Email:    req.Email,
				}, nil
			},
		}
		r := setupAuthRouter(svc)

		w := postJSON(t, r, "/api/v1/auth/register", validRegisterRequest())

		assert.Equal(t, http.StatusCreated, w.Code)

		var envelope struct {
			Ok   bool `json:"ok"`
			Data struct {
				Nik      string `json:"nik"`
				FullName string `json:"full_name"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		assert.Equal(t, "111111", envelope.Data.Nik)
		assert.Equal(t, "Budi Santoso", envelope.Data.FullName)
	})

	t.Run("body tidak valid mengembalikan 400 tanpa memanggil service", func(t *testing.T) {
		called := false
		svc := &fakeAccountService{
			registerFn: func(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
				called = true
				return account.RegisterResponse{}, nil
			},
		}
		r := setupAuthRouter(svc)

		req := validRegisterRequest()
		req.Email = "bukan-email"
		w := postJSON(t, r, "/api/v1/auth/register", req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})

	t.Run("password tidak cocok mengembalikan 400", func(t *testing.T) {
		svc := &fakeAccountService{
			registerFn: func(ctx context.Context, req account.RegisterRequest) (account.RegisterResponse, error) {
				return account.RegisterResponse{}, accounterrors.ErrPasswordMismatch
			},
		}
		r := setupAuthRouter(svc)

		w := postJSON(t, r, "/api/v1/auth/register", validRegisterRequest())

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var envelope struct {
			Ok    bool `json:"ok"`
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		assert.NotEmpty(t, envelope.Error.Code)
	})
}

func TestAccountHandler_Login(t *testing.T) {
	t.Run("sukses mengembalikan token", func(t *testing.T) {
		svc := &fakeAccountService{
			loginFn: func(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
				return account.LoginResponse{Token: "signed-token"}, nil
			},
		}
		r := setupAuthRouter(svc)

		w := postJSON(t, r, "/api/v1/auth/login", account.LoginRequest{
			Email:    "budi@example.com",
			Password: "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var envelope struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Equal(t, "signed-token", envelope.Data.Token)
	})

	t.Run("kredensial salah mengembalikan 401", func(t *testing.T) {
		svc := &fakeAccountService{
			loginFn: func(ctx context.Context, req account.LoginRequest) (account.LoginResponse, error) {
				return account.LoginResponse{}, accounterrors.ErrInvalidCredential
			},
		}
		r := setupAuthRouter(svc)

		w := postJSON(t, r, "/api/v1/auth/login", account.LoginRequest{
			Email:    "budi@example.com",
			Password: "salah-terus",
		})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAccountHandler_ForgetChangePassword(t *testing.T) {
	t.Run("forget password sukses", func(t *testing.T) {
		svc := &fakeAccountService{
			forgetPasswordFn: func(ctx context.Context, req account.ForgetPasswordRequest) error {
				return nil
			},
		}
		r := setupAuthRouter(svc)

		w := postJSON(t, r, "/api/v1/auth/forget-password", account.ForgetPasswordRequest{
			Email: "budi@example.com",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("change password dengan otp kedaluwarsa", func(t *testing.T) {
		svc := &fakeAccountService{
			changePasswordFn: func(ctx context.Context, req account.ChangePasswordRequest) error {
				return accounterrors.ErrOtpExpired
			},
		}
		r := setupAuthRouter(svc)

		otp := 123456
		w := postJSON(t, r, "/api/v1/auth/change-password", account.ChangePasswordRequest{
			Email:           "budi@example.com",
			Otp:             &otp,
			NewPassword:     "password-baru",
			ConfirmPassword: "password-baru",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("konfirmasi password beda ditolak validator", func(t *testing.T) {
		called := false
		svc := &fakeAccountService{
			changePasswordFn: func(ctx context.Context, req account.ChangePasswordRequest) error {
				called = true
				return nil
			},
		}
		r := setupAuthRouter(svc)

		otp := 123456
		w := postJSON(t, r, "/api/v1/auth/change-password", account.ChangePasswordRequest{
			Email:           "budi@example.com",
			Otp:             &otp,
			NewPassword:     "password-baru",
			ConfirmPassword: "password-lain",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}
