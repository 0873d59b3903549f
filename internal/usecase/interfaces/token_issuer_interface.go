package interfaces

// ITokenIssuer mints the bearer token returned on successful login.
type ITokenIssuer interface {
	Issue(username string) (string, error)
}
