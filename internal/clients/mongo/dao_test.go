package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestAsUpdateDoc(t *testing.T) {
	tests := []struct {
		name     string
		patch    bson.M
		expected bson.M
	}{
		{
			name:     "plain patch wrapped in $set",
			patch:    bson.M{"email": "a@x.com", "updated_by": "admin"},
			expected: bson.M{"$set": bson.M{"email": "a@x.com", "updated_by": "admin"}},
		},
		{
			name: "operator patch passed through",
			patch: bson.M{
				"$set":   bson.M{"password_hash": "h"},
				"$unset": bson.M{"reset_token": "", "reset_token_expires": ""},
			},
			expected: bson.M{
				"$set":   bson.M{"password_hash": "h"},
				"$unset": bson.M{"reset_token": "", "reset_token_expires": ""},
			},
		},
		{
			name:     "empty patch wrapped",
			patch:    bson.M{},
			expected: bson.M{"$set": bson.M{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, asUpdateDoc(tt.patch))
		})
	}
}
