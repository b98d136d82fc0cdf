package cli

import (
	"context"
	"errors"
	"fmt"

	"inkwell/internal/common"
	"inkwell/internal/models"
	"inkwell/internal/session"
)

// Login prompts for email and secret and authenticates. Unknown email and
// wrong secret produce the same message on purpose.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email:", a.out)
	if err != nil {
		return err
	}
	secret, err := GetPassword("Password:", a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, secret); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			printlnFn("Login failed: invalid email or password.")
			return err
		}
		a.log.Error(ctx, "login failed", "err", err)
		printlnFn("Login failed.")
		return err
	}
	printlnFn(fmt.Sprintf("Welcome back, %s!", a.session.Current().Name))
	return nil
}

// Signup collects the profile fields and creates the account.
func (a *App) Signup(ctx context.Context) error {
	params := session.SignupParams{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Email:", &params.Email},
		{"Username:", &params.Username},
		{"Name:", &params.Name},
		{"Bio (optional):", &params.Bio},
	}
	for _, f := range fields {
		value, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = value
	}
	secret, err := GetPassword("Password:", a.out)
	if err != nil {
		return err
	}
	params.Secret = secret

	if err := a.session.Signup(ctx, params); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			printlnFn("Signup failed: email or username already taken.")
			return err
		}
		a.log.Error(ctx, "signup failed", "err", err)
		printlnFn("Signup failed.")
		return err
	}
	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", params.Name))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "err", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

// Whoami prints the cached identity.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}
	printlnFn(fmt.Sprintf("%s (@%s) <%s> | %d followers, %d following",
		u.Name, u.Username, u.Email, len(u.Followers), len(u.Following)))
	if u.Bio != "" {
		printlnFn(u.Bio)
	}
	return nil
}

// Profile edits name, bio, and avatar. Empty answers keep the current value
// (the patch simply omits those fields).
func (a *App) Profile(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		printlnFn("Not logged in.")
		return common.ErrorNotLoggedIn
	}

	patch := models.UserPatch{}
	name, err := GetSimpleText(a.reader, fmt.Sprintf("Name [%s]:", u.Name), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		patch.Name = &name
	}
	bio, err := GetSimpleText(a.reader, "Bio (blank to keep):", a.out)
	if err != nil {
		return err
	}
	if bio != "" {
		patch.Bio = &bio
	}
	avatar, err := GetSimpleText(a.reader, "Avatar URL (blank to keep):", a.out)
	if err != nil {
		return err
	}
	if avatar != "" {
		patch.Avatar = &avatar
	}

	if err := a.session.UpdateProfile(ctx, patch); err != nil {
		a.log.Error(ctx, "profile update failed", "err", err)
		printlnFn("Profile update failed.")
		return err
	}
	printlnFn("Profile updated.")
	return nil
}
