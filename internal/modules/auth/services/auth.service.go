package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"gestion-projets-core/internal/app/config"
	"gestion-projets-core/internal/infrastructure/datasource"
	"gestion-projets-core/internal/infrastructure/upstream"
	"gestion-projets-core/internal/modules/auth/dto"
	users "gestion-projets-core/internal/modules/users/services"
	"gestion-projets-core/internal/shared/apperror"
	"gestion-projets-core/internal/shared/localstore"
	"gestion-projets-core/internal/shared/models"
	"gestion-projets-core/internal/shared/utils"
)

const defaultLoginPath = "/login/"

// session valeur rangée sous session_{id}
type session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

// Champs où le backend peut renvoyer le jeton, dans l'ordre
var tokenPaths = []string{"token", "access", "key", "access_token"}

// AuthService ouvre les sessions de la console. Chaque connexion reçoit un
// identifiant opaque; le jeton et l'utilisateur sont rangés sous session_{id},
// clé que le middleware de jeton relit pour ce seul client.
type AuthService struct {
	users     *users.UserService
	client    *upstream.Client
	storage   localstore.LocalStorage
	local     bool
	loginPath string
	log       *zap.Logger
}

func NewAuthService(
	cfg *config.Config,
	userService *users.UserService,
	client *upstream.Client,
	storage localstore.LocalStorage,
	log *zap.Logger,
) *AuthService {
	loginPath := defaultLoginPath
	if path, ok := cfg.Upstream.Paths["login"]; ok {
		loginPath = "/" + strings.TrimLeft(path, "/")
	}

	return &AuthService{
		users:     userService,
		client:    client,
		storage:   storage,
		local:     cfg.SourceOf(datasource.Users.Name) == config.SourceLocal,
		loginPath: loginPath,
		log:       log.Named("auth"),
	}
}

// Login vérifie les identifiants auprès de la source des utilisateurs puis enregistre la session
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		result *dto.LoginResponse
		err    error
	)
	if s.local {
		result, err = s.localLogin(ctx, req)
	} else {
		result, err = s.upstreamLogin(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	if result.User != nil {
		user := result.User.Public()
		result.User = &user
	}

	result.SessionID = uuid.NewString()
	raw, err := json.Marshal(session{Token: result.Token, User: result.User})
	if err != nil {
		return nil, err
	}
	if err := s.storage.SetItem(ctx, localstore.Session(result.SessionID), string(raw)); err != nil {
		return nil, err
	}

	s.log.Info("session ouverte", zap.String("email", req.Email), zap.Bool("local", s.local))
	return result, nil
}

func (s *AuthService) localLogin(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	all, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}

	for i := range all {
		if !strings.EqualFold(all[i].Email, req.Email) {
			continue
		}
		if !utils.VerifyPassword(req.Password, all[i].Password) {
			break
		}
		return &dto.LoginResponse{Token: uuid.NewString(), User: &all[i]}, nil
	}
	return nil, invalidCredentials()
}

func (s *AuthService) upstreamLogin(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	resp, err := s.client.Post(ctx, s.loginPath, req)
	if err != nil {
		return nil, err
	}
	if resp.Status == http.StatusBadRequest || resp.Status == http.StatusUnauthorized {
		return nil, invalidCredentials()
	}

	env := resp.Envelope()
	if !env.Success {
		return nil, resp.Err()
	}

	data := gjson.ParseBytes(env.Data)
	var token string
	for _, path := range tokenPaths {
		if value := data.Get(path); value.Type == gjson.String && value.Str != "" {
			token = value.Str
			break
		}
	}
	if token == "" {
		return nil, apperror.Upstream("Le backend n'a renvoyé aucun jeton", resp.Status)
	}

	result := &dto.LoginResponse{Token: token}
	if raw := data.Get("user"); raw.IsObject() {
		var user models.User
		if err := json.Unmarshal([]byte(raw.Raw), &user); err == nil {
			result.User = &user
		}
	}
	return result, nil
}

// Logout oublie la session; une session inconnue n'est pas une erreur
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.storage.RemoveItem(ctx, localstore.Session(sessionID))
}

// Me renvoie la session du client
func (s *AuthService) Me(ctx context.Context, sessionID string) (*dto.MeResponse, error) {
	if sessionID == "" {
		return nil, noSession()
	}

	raw, err := s.storage.GetItem(ctx, localstore.Session(sessionID))
	if errors.Is(err, localstore.ErrNoItem) {
		return nil, noSession()
	}
	if err != nil {
		return nil, err
	}

	var current session
	if err := json.Unmarshal([]byte(raw), &current); err != nil {
		s.log.Warn("session enregistrée illisible", zap.Error(err))
		return nil, noSession()
	}

	source := config.SourceUpstream
	if s.local {
		source = config.SourceLocal
	}
	return &dto.MeResponse{
		User:    current.User,
		Session: dto.SessionInfo{Active: true, Source: source},
	}, nil
}

func noSession() error {
	return apperror.Unauthorized("Aucune session active", "NO_SESSION")
}

func invalidCredentials() error {
	return apperror.Unauthorized("Email ou mot de passe incorrect", "INVALID_CREDENTIALS")
}
