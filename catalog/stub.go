package catalog

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/crateful/wirecat/ir"
)

const (
	upper    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	upperNum = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

func pick(alphabet string, k int) string {
	b := make([]byte, k)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

// randomToken returns a placeholder value for a stub record field.
func randomToken() string {
	return pick(upperNum, 7)
}

func randomUUID() string {
	return uuid.NewString()
}

func randomSemver() string {
	return fmt.Sprintf("%02d.%02d.%02d", rand.Intn(100), rand.Intn(100), rand.Intn(100))
}

func randomSerial() string {
	return pick(upper, 1) + pick(upperNum, 11)
}

// stubBody wraps a body under the singular wire tag.
func stubBody(singular string, kvs ...string) *ir.Node {
	body := ir.Object()
	for i := 0; i < len(kvs); i += 2 {
		body.SetField(kvs[i], ir.FromString(kvs[i+1]))
	}
	res := ir.Object()
	res.SetField(singular, body)
	return res
}
