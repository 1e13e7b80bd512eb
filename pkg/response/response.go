package response

import "github.com/gin-gonic/gin"

// Error payloads come in two shapes, both kept from the original API
// contract: auth and not-found paths answer {"message": ...} while
// datastore and validation failures answer {"error": ..., "details": ...}.
// Clients surface whichever field is present.

// Message writes a {"message": ...} error body.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// AbortMessage writes a {"message": ...} body and aborts the chain.
// Used by middleware so no handler runs after a rejection.
func AbortMessage(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"message": msg})
}

// Failure writes an {"error": ..., "details": ...} error body.
func Failure(c *gin.Context, status int, errMsg string, details interface{}) {
	c.JSON(status, gin.H{"error": errMsg, "details": details})
}
