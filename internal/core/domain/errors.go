package domain

import "errors"

var ErrMalformedAuthResponse = errors.New("auth response missing token or username")
var ErrAuthInFlight = errors.New("another login or registration is already in flight")
var ErrNotAuthenticated = errors.New("no authenticated session")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrProfessionalNotFound = errors.New("professional not found")
var ErrReviewNotFound = errors.New("review not found")
var ErrReplyNotFound = errors.New("review reply not found")
var ErrOrderNotFound = errors.New("service order not found")
var ErrMessageNotFound = errors.New("message not found")
var ErrServiceNotFound = errors.New("priced service not found")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidTransition = errors.New("invalid order status transition")
