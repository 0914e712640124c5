// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"walletgate/internal/domain"
	"walletgate/internal/repository"
	"walletgate/internal/util"
	"walletgate/pkg/db"
)

// sessionDuration is how long an operator session token stays valid.
const sessionDuration = 24 * time.Hour

// Claims are the JWT claims carried by an operator session token.
type Claims struct {
	OperatorID uuid.UUID `json:"operator_id"`
	Email      string    `json:"email"`
	jwt.RegisteredClaims
}

// Session is returned on a successful login.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService handles operator registration and session tokens for the
// administrative surface. Wallet operations authenticate with API keys, not
// sessions.
type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.Operator, *domain.Project, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	ParseToken(tokenString string) (*Claims, error)
}

// authService implements the AuthService interface.
type authService struct {
	dbBeginner   db.DBTxBeginner
	dbExecutor   repository.DBExecutor
	operatorRepo repository.OperatorRepository
	projectRepo  repository.ProjectRepository
	jwtSecret    []byte
	beginTx      db.BeginTxFunc
	commitTx     db.CommitTxFunc
	rollbackTx   db.RollbackTxFunc
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	operatorRepo repository.OperatorRepository,
	projectRepo repository.ProjectRepository,
	jwtSecret []byte,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AuthService {
	return &authService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		operatorRepo: operatorRepo,
		projectRepo:  projectRepo,
		jwtSecret:    jwtSecret,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
	}
}

// Register creates an operator and their default project in one transaction.
// A duplicate email fails with ErrConflict.
func (s *authService) Register(ctx context.Context, email, name, password string) (*domain.Operator, *domain.Project, error) {
	if email == "" || password == "" {
		return nil, nil, util.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, nil, fmt.Errorf("register: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, nil, fmt.Errorf("register: transaction controller does not implement DBExecutor")
	}

	operator := domain.NewOperator(email, name, string(hash))
	if err := s.operatorRepo.CreateOperator(ctx, txExecutor, operator); err != nil {
		if util.IsError(err, util.ErrConflict) {
			return nil, nil, util.ErrConflict
		}
		return nil, nil, fmt.Errorf("register: failed to create operator: %w", err)
	}

	project := domain.NewProject(operator.ID, "Default Project")
	if err := s.projectRepo.CreateProject(ctx, txExecutor, project); err != nil {
		return nil, nil, fmt.Errorf("register: failed to create default project: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, nil, fmt.Errorf("register: failed to commit transaction: %w", err)
	}

	return operator, project, nil
}

// Login checks the password and issues a signed session token. A wrong email
// and a wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	operator, err := s.operatorRepo.GetOperatorByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUnauthorized
		}
		return nil, fmt.Errorf("login: failed to look up operator: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return nil, util.ErrUnauthorized
	}

	expiresAt := time.Now().Add(sessionDuration)
	claims := &Claims{
		OperatorID: operator.ID,
		Email:      operator.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			Issuer:    "walletgate",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("login: failed to sign session token: %w", err)
	}

	return &Session{Token: token, ExpiresAt: expiresAt}, nil
}

// ParseToken validates a session token and returns its claims.
func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, util.ErrUnauthorized
	}
	return claims, nil
}
