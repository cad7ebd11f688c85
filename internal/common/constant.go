package common

// AuthorizationHeaderName is the HTTP header carrying the access token.
const AuthorizationHeaderName = "Authorization"

// TokenTypeBearer is the only token type issued by the server and the
// scheme expected in the Authorization header.
const TokenTypeBearer = "bearer"
