package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"doctorsportal/identity"
)

// IdentityKey is the context key holding the verified requester email.
const IdentityKey = "decodedEmail"

/*
* If a bearer token is present, verify it and attach the email to the context
* Any verification failure falls through to anonymous; the request is never
* rejected here — downstream handlers decide what anonymity means
 */
func VerifyToken(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			token := strings.TrimPrefix(header, "Bearer ")
			if email, err := verifier.Verify(c.Request.Context(), token); err == nil {
				c.Set(IdentityKey, email)
			} else {
				log.Println("Token verification failed:", err)
			}
		}
		c.Next()
	}
}
