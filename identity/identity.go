// Package identity verifies externally-issued bearer tokens. The portal never
// mints tokens itself; it only asks the provider who a token belongs to.
package identity

import (
	"context"
	"errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// Verifier resolves a bearer token to a verified email. It never panics;
// callers branch on the error and treat any failure as anonymous.
type Verifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsJSON []byte) (*FirebaseVerifier, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsJSON(credentialsJSON))
	if err != nil {
		return nil, err
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (string, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}
	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return "", errors.New("verified token carries no email claim")
	}
	return email, nil
}
