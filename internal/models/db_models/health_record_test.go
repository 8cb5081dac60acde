package db_models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// HealthRecord.ClientID stores a user id while Client rows carry their own
// primary key, so no association may exist between the two: AutoMigrate would
// turn it into a health_records.client_id -> clients.id constraint that every
// insert violates.
func TestHealthRecordSchemaHasNoAssociations(t *testing.T) {
	rec, err := schema.Parse(&HealthRecord{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	assert.Empty(t, rec.Relationships.Relations)
}

func TestClientSchemaDoesNotOwnHealthRecords(t *testing.T) {
	client, err := schema.Parse(&Client{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	_, ok := client.Relationships.Relations["HealthRecords"]
	assert.False(t, ok)
}
