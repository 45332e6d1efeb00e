package api

import (
	"context"

	"github.com/mallcloud/mallctl/internal/domain"
)

// Login methods accepted by the mall API.
const (
	LoginTypeSMS    = "sms"
	LoginTypeWechat = "wechat"
)

// SMS code purposes.
const (
	SMSPurposeLogin    = "login"
	SMSPurposeRegister = "register"
)

type LoginParams struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
	Type  string `json:"type"`
}

type RegisterParams struct {
	Phone    string `json:"phone"`
	Code     string `json:"code"`
	Password string `json:"password,omitempty"`
	Nickname string `json:"nickname,omitempty"`
}

// LoginResult is the payload of a successful login or registration.
type LoginResult struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// SendSMSCode requests a verification code for the given phone number.
func (c *Client) SendSMSCode(ctx context.Context, phone, purpose string) error {
	if purpose == "" {
		purpose = SMSPurposeLogin
	}

	body := struct {
		Phone string `json:"phone"`
		Type  string `json:"type"`
	}{Phone: phone, Type: purpose}

	return c.post(ctx, "/user/sms/send", body, nil)
}

// LoginByPhone exchanges a phone number and SMS code for a session token.
func (c *Client) LoginByPhone(ctx context.Context, phone, code string) (LoginResult, error) {
	var result LoginResult
	params := LoginParams{Phone: phone, Code: code, Type: LoginTypeSMS}
	if err := c.post(ctx, "/user/login", params, &result); err != nil {
		return LoginResult{}, err
	}

	return result, nil
}

// LoginByWechat exchanges a WeChat authorization code for a session token.
func (c *Client) LoginByWechat(ctx context.Context, code string) (LoginResult, error) {
	var result LoginResult
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	if err := c.post(ctx, "/user/wechat/login", body, &result); err != nil {
		return LoginResult{}, err
	}

	return result, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, params RegisterParams) (LoginResult, error) {
	var result LoginResult
	if err := c.post(ctx, "/user/register", params, &result); err != nil {
		return LoginResult{}, err
	}

	return result, nil
}

// Profile fetches the authenticated user's profile.
func (c *Client) Profile(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.get(ctx, "/user/profile", nil, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateProfile submits the patched profile fields and returns the updated
// profile.
func (c *Client) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (domain.User, error) {
	var user domain.User
	if err := c.put(ctx, "/user/profile", patch, &user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}
