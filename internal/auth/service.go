package auth

import (
	"context"
	"errors"
	"time"

	"github.com/vezisop/velocity-v1-backend/internal/account"
	"github.com/vezisop/velocity-v1-backend/internal/db"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

type Service struct {
	secret []byte
	db     db.Querier
}

type Claims struct {
	AccountID int64 `json:"account_id"`
	jwt.RegisteredClaims
}

func NewService(secret string, db db.Querier) *Service {
	return &Service{
		secret: []byte(secret),
		db:     db,
	}
}

var (
	hashPasswordFn = bcrypt.GenerateFromPassword
	signTokenFn    = (*Service).signToken
)

func (s *Service) Register(ctx context.Context, req RegisterRequest) (account.Account, TokenResponse, error) {
	if req.Email == "" || req.Handle == "" || req.Password == "" {
		return account.Account{}, TokenResponse{}, errors.New("email, handle, password required")
	}
	hash, err := hashPasswordFn([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, TokenResponse{}, err
	}

	acc := account.Account{
		Email:        req.Email,
		Handle:       req.Handle,
		PasswordHash: string(hash),
		DisplayName:  req.DisplayName,
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO accounts (handle, email, password_hash, display_name)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at
	`, acc.Handle, acc.Email, acc.PasswordHash, acc.DisplayName)
	if err := row.Scan(&acc.ID, &acc.CreatedAt); err != nil {
		return account.Account{}, TokenResponse{}, err
	}

	tokens, err := s.GenerateTokens(ctx, acc.ID)
	if err != nil {
		return account.Account{}, TokenResponse{}, err
	}
	return acc, tokens, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (account.Account, TokenResponse, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, handle, email, password_hash, COALESCE(display_name,''), created_at
		FROM accounts WHERE email = $1
	`, req.Email)

	var acc account.Account
	if err := row.Scan(&acc.ID, &acc.Handle, &acc.Email, &acc.PasswordHash, &acc.DisplayName, &acc.CreatedAt); err != nil {
		return account.Account{}, TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		return account.Account{}, TokenResponse{}, errors.New("invalid credentials")
	}

	tokens, err := s.GenerateTokens(ctx, acc.ID)
	if err != nil {
		return account.Account{}, TokenResponse{}, err
	}
	return acc, tokens, nil
}

func (s *Service) GenerateTokens(ctx context.Context, accountID int64) (TokenResponse, error) {
	access, err := signTokenFn(s, accountID, accessTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	refresh, err := signTokenFn(s, accountID, refreshTokenTTL)
	if err != nil {
		return TokenResponse{}, err
	}

	if err := s.saveRefreshToken(ctx, refresh, accountID, refreshTokenTTL); err != nil {
		return TokenResponse{}, err
	}

	return TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
	}, nil
}

func (s *Service) ValidateRefreshToken(ctx context.Context, token string) (int64, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return 0, err
	}

	accountID, expiresAt, err := s.lookupRefreshToken(ctx, token)
	if err != nil || accountID != claims.AccountID || time.Now().After(expiresAt) {
		return 0, errors.New("refresh token invalid")
	}
	return claims.AccountID, nil
}

func (s *Service) ValidateAccessToken(token string) (int64, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return 0, err
	}
	return claims.AccountID, nil
}

func (s *Service) signToken(accountID int64, ttl time.Duration) (string, error) {
	claims := Claims{
		AccountID: accountID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) parseToken(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("token invalid")
	}
	return claims, nil
}

func (s *Service) saveRefreshToken(ctx context.Context, token string, accountID int64, ttl time.Duration) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO refresh_tokens (id, account_id, token, expires_at)
		VALUES ($1,$2,$3,$4)
	`, uuid.NewString(), accountID, token, time.Now().Add(ttl))
	return err
}

func (s *Service) lookupRefreshToken(ctx context.Context, token string) (int64, time.Time, error) {
	row := s.db.QueryRow(ctx, `
		SELECT account_id, expires_at
		FROM refresh_tokens
		WHERE token = $1 AND revoked_at IS NULL
	`, token)
	var accountID int64
	var expiresAt time.Time
	if err := row.Scan(&accountID, &expiresAt); err != nil {
		return 0, time.Time{}, err
	}
	return accountID, expiresAt, nil
}
