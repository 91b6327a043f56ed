package model

// Registry holds every registered account, keyed by normalized username.
// It is exclusively owned by the running process: constructed at startup
// (empty or restored from a snapshot) and mutated only by registration.
type Registry struct {
	accounts map[string]*Account
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[string]*Account)}
}

// Lookup returns the account stored under a normalized username key.
func (r *Registry) Lookup(key string) (*Account, bool) {
	a, ok := r.accounts[key]
	return a, ok
}

// Contains reports whether a normalized username key is taken.
func (r *Registry) Contains(key string) bool {
	_, ok := r.accounts[key]
	return ok
}

// Add inserts an account under a normalized username key.
func (r *Registry) Add(key string, a *Account) {
	r.accounts[key] = a
}

// Accounts returns the underlying key -> account mapping.
func (r *Registry) Accounts() map[string]*Account {
	return r.accounts
}

// Len returns the number of registered accounts.
func (r *Registry) Len() int {
	return len(r.accounts)
}

// Account is one registered user: the username as entered at registration,
// the password (compared with plain string equality), and the wallet.
type Account struct {
	Username string
	Password string
	Wallet   *Wallet
}

// NewAccount creates an account with a fresh empty wallet.
func NewAccount(username, password string) *Account {
	return &Account{
		Username: username,
		Password: password,
		Wallet:   NewWallet(),
	}
}

// CheckPassword reports whether raw equals the stored password.
func (a *Account) CheckPassword(raw string) bool {
	return a.Password == raw
}
