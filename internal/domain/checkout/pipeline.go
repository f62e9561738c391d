// internal/domain/checkout/pipeline.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/user"
	"github.com/your-org/storefront/internal/pkg/auth"
)

// Step is one checkout state. Steps form a linear machine with guarded
// entry: Cart -> SignIn -> Shipping -> Payment -> PlaceOrder -> Completed.
type Step int

const (
	StepCart Step = iota
	StepSignIn
	StepShipping
	StepPayment
	StepPlaceOrder
	StepCompleted
)

var stepNames = map[Step]string{
	StepCart:       "cart",
	StepSignIn:     "signin",
	StepShipping:   "shipping",
	StepPayment:    "payment",
	StepPlaceOrder: "placeorder",
	StepCompleted:  "completed",
}

// String returns the step's navigation name
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ParseStep resolves a navigation name to a step
func ParseStep(name string) (Step, error) {
	for step, stepName := range stepNames {
		if stepName == name {
			return step, nil
		}
	}
	return StepCart, fmt.Errorf("unknown checkout step %q", name)
}

// Decision is the outcome of a guard evaluation. A failed guard is a
// redirect to the prerequisite step, never a user-visible error.
type Decision struct {
	Allowed  bool `json:"allowed"`
	Redirect Step `json:"redirect,omitempty"`
	// ReturnTo is carried on redirects to SignIn so the flow resumes at
	// the step that was originally requested
	ReturnTo Step `json:"return_to,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func redirect(to Step) Decision {
	return Decision{Redirect: to}
}

// Submission errors
var (
	// ErrEmptyCart blocks order placement while the cart holds no items
	ErrEmptyCart = errors.New("cannot place an order with an empty cart")

	// ErrOrderCompleted blocks a second submission after the one-shot
	// Completed state has been reached
	ErrOrderCompleted = errors.New("order already placed")

	// Prerequisite errors returned when placement is submitted without
	// the guarded steps having been satisfied. Each pairs with the step
	// the caller is redirected to.
	ErrSignInRequired   = errors.New("sign in is required before placing an order")
	ErrShippingRequired = errors.New("a shipping address is required before placing an order")
	ErrPaymentRequired  = errors.New("a payment method is required before placing an order")
)

// Checkout step forms

// SignInForm carries the sign-in step input
type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Redirect string `json:"redirect"`
}

// SignUpForm carries the sign-up step input
type SignUpForm struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Redirect        string `json:"redirect"`
}

// ShippingForm carries the shipping step input
type ShippingForm struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Pipeline drives one session's checkout. Guards are re-evaluated on
// every Enter call, so a sign-out while on Shipping redirects back to
// SignIn on the next navigation.
type Pipeline struct {
	mu        sync.Mutex
	store     *cart.Store
	directory *user.Directory
	tokens    *auth.TokenIssuer
	completed bool
}

// NewPipeline creates a checkout pipeline over a session store
func NewPipeline(store *cart.Store, directory *user.Directory, tokens *auth.TokenIssuer) *Pipeline {
	return &Pipeline{
		store:     store,
		directory: directory,
		tokens:    tokens,
	}
}

// Enter evaluates the entry guard for a step against current session
// state
func (p *Pipeline) Enter(step Step) Decision {
	switch step {
	case StepShipping:
		if p.store.Session() == nil {
			d := redirect(StepSignIn)
			d.ReturnTo = StepShipping
			return d
		}
	case StepPayment:
		if p.store.Cart().ShippingAddress == nil {
			return redirect(StepShipping)
		}
	case StepPlaceOrder:
		if p.store.Cart().PaymentMethod == "" {
			return redirect(StepPayment)
		}
	}
	return allow()
}

// SubmitSignIn validates the sign-in form and replaces the session.
// No credential is ever verified against the directory; any input that
// passes field validation signs in. The returned path is the caller's
// requested return path, defaulting to the catalog root.
func (p *Pipeline) SubmitSignIn(ctx context.Context, form SignInForm) (string, error) {
	if errs := SignInRules.Validate(map[string]string{
		"email":    form.Email,
		"password": form.Password,
	}); errs != nil {
		return "", errs
	}

	session, err := p.newSession(form.Email)
	if err != nil {
		return "", err
	}
	if err := p.store.Apply(ctx, cart.SignIn{Session: session}); err != nil {
		return "", err
	}

	return redirectPath(form.Redirect), nil
}

// SubmitSignUp validates the sign-up form, rejects duplicate emails and
// creates a session for the new account
func (p *Pipeline) SubmitSignUp(ctx context.Context, form SignUpForm) (string, error) {
	if errs := SignUpRules.Validate(map[string]string{
		"name":            form.Name,
		"email":           form.Email,
		"password":        form.Password,
		"confirmPassword": form.ConfirmPassword,
	}); errs != nil {
		return "", errs
	}
	if form.Password != form.ConfirmPassword {
		return "", FieldErrors{"confirmPassword": "Passwords do not match"}
	}

	session, err := p.newSession(form.Email)
	if err != nil {
		return "", err
	}
	if err := p.store.Apply(ctx, cart.SignUp{Email: form.Email, Session: session}); err != nil {
		return "", err
	}

	return redirectPath(form.Redirect), nil
}

// SubmitShipping validates and saves the shipping address, advancing to
// Payment
func (p *Pipeline) SubmitShipping(ctx context.Context, form ShippingForm) (Step, error) {
	if errs := ShippingRules.Validate(map[string]string{
		"fullName":   form.FullName,
		"address":    form.Address,
		"city":       form.City,
		"postalCode": form.PostalCode,
		"country":    form.Country,
	}); errs != nil {
		return StepShipping, errs
	}

	err := p.store.Apply(ctx, cart.SaveShippingAddress{Address: cart.ShippingAddress{
		FullName:   form.FullName,
		Address:    form.Address,
		City:       form.City,
		PostalCode: form.PostalCode,
		Country:    form.Country,
	}})
	if err != nil {
		return StepShipping, err
	}
	return StepPayment, nil
}

// SubmitPayment saves the selected payment method, advancing to PlaceOrder
func (p *Pipeline) SubmitPayment(ctx context.Context, method string) (Step, error) {
	if method == "" {
		return StepPayment, FieldErrors{"paymentMethod": "Payment Method is required"}
	}
	if err := p.store.Apply(ctx, cart.SavePaymentMethod{Method: method}); err != nil {
		return StepPayment, err
	}
	return StepPlaceOrder, nil
}

// SubmitPlaceOrder places the order. The entry guards are re-evaluated
// here so a direct submission cannot bypass them: placement requires a
// session, a shipping address and a payment method on the active cart.
// On success the cart is cleared and the pipeline enters the terminal
// one-shot Completed state, which redirects to the catalog root.
func (p *Pipeline) SubmitPlaceOrder(ctx context.Context) (Step, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.completed {
		return StepPlaceOrder, ErrOrderCompleted
	}

	snapshot := p.store.Cart()
	if p.store.Session() == nil {
		return StepSignIn, ErrSignInRequired
	}
	if snapshot.ShippingAddress == nil {
		return StepShipping, ErrShippingRequired
	}
	if snapshot.PaymentMethod == "" {
		return StepPayment, ErrPaymentRequired
	}
	if len(snapshot.Items) == 0 {
		return StepPlaceOrder, ErrEmptyCart
	}

	if err := p.store.Apply(ctx, cart.ClearCart{}); err != nil {
		return StepPlaceOrder, err
	}
	p.completed = true
	return StepCompleted, nil
}

// Completed reports whether the order has been placed
func (p *Pipeline) Completed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.completed
}

// newSession issues a credential token and builds the session. The admin
// flag is carried over from the directory entry when one exists; the
// password is not consulted.
func (p *Pipeline) newSession(email string) (user.Session, error) {
	isAdmin := false
	if existing, ok := p.directory.FindByEmail(email); ok {
		isAdmin = existing.IsAdmin
	}

	token, err := p.tokens.IssueCredential(email, isAdmin)
	if err != nil {
		return user.Session{}, fmt.Errorf("failed to issue credential token: %w", err)
	}

	return user.Session{
		Email:           email,
		CredentialToken: token,
		IsAdmin:         isAdmin,
	}, nil
}

func redirectPath(redirect string) string {
	if redirect == "" {
		return "/"
	}
	return redirect
}
