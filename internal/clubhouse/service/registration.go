package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/domain"
	"github.com/aussiebroadwan/clubhouse/internal/clubhouse/store"
	"github.com/aussiebroadwan/clubhouse/pkg/slogx"
)

var (
	ErrMissingField          = errors.New("missing required field")
	ErrDuplicateRegistration = errors.New("email already registered")
	ErrReservedEmail         = errors.New("email uses a reserved key prefix")
)

type RegistrationService struct {
	Store store.Store

	// Now stamps new records. Defaults to time.Now.
	Now func() time.Time
}

// JoinRequest is the payload accepted by the join API. Only Email is required.
type JoinRequest struct {
	Email    string
	Password string
	Name     string
}

// Register stores a landing-page registration keyed by the bare email.
func (s *RegistrationService) Register(ctx context.Context, email, password string) (domain.Registration, error) {
	if email == "" || password == "" {
		slogx.FromContext(ctx).Debug("registration rejected, missing field",
			slog.Bool("has_email", email != ""),
			slog.Bool("has_password", password != ""),
		)
		return domain.Registration{}, ErrMissingField
	}

	rec := domain.NewRegistration(email, password, "", s.now())
	if err := s.insert(ctx, store.NamespaceLanding, rec); err != nil {
		return domain.Registration{}, err
	}
	return rec, nil
}

// Join stores a member registration under the "user:" namespace.
func (s *RegistrationService) Join(ctx context.Context, req JoinRequest) (domain.Registration, error) {
	if req.Email == "" {
		slogx.FromContext(ctx).Debug("join rejected, missing email")
		return domain.Registration{}, ErrMissingField
	}

	rec := domain.NewRegistration(req.Email, req.Password, req.Name, s.now())
	if err := s.insert(ctx, store.NamespaceMembers, rec); err != nil {
		return domain.Registration{}, err
	}
	return rec, nil
}

// SignUp is Join with the password required as well.
func (s *RegistrationService) SignUp(ctx context.Context, req JoinRequest) (domain.Registration, error) {
	if req.Email == "" || req.Password == "" {
		slogx.FromContext(ctx).Debug("sign-up rejected, missing field",
			slog.Bool("has_email", req.Email != ""),
			slog.Bool("has_password", req.Password != ""),
		)
		return domain.Registration{}, ErrMissingField
	}
	return s.Join(ctx, req)
}

// ListMembers returns every record in the members namespace, in store order.
func (s *RegistrationService) ListMembers(ctx context.Context) ([]domain.Registration, error) {
	entries, err := s.Store.Registrations().GetAll(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list registrations", slog.Any("error", err))
		return nil, err
	}

	members := store.NamespaceMembers.Filter(entries)
	out := make([]domain.Registration, 0, len(members))
	for _, e := range members {
		out = append(out, e.Record)
	}
	return out, nil
}

func (s *RegistrationService) insert(ctx context.Context, ns store.Namespace, rec domain.Registration) error {
	log := slogx.FromContext(ctx).With(
		slog.String("email", rec.Email),
		slog.String("namespace", string(ns)),
	)

	if !ns.Accepts(rec.Email) {
		log.Warn("registration rejected, reserved prefix")
		return ErrReservedEmail
	}

	err := s.Store.Registrations().PutIfAbsent(ctx, ns.Key(rec.Email), rec)
	switch {
	case err == nil:
		log.Info("new registration")
		return nil
	case errors.Is(err, store.ErrAlreadyExists):
		log.Warn("duplicate registration")
		return ErrDuplicateRegistration
	default:
		log.Error("failed to store registration", slog.Any("error", err))
		return err
	}
}

func (s *RegistrationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
