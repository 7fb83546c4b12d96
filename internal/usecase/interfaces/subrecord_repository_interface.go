package interfaces

import (
	"context"

	"credimaq/internal/domain/entities"
)

// ISubRecordRepository abstracts DynamoDB persistence for the four form
// sub-records. Reads return a zero-value entity when the id does not exist.

type ISubRecordRepository interface {
	PutProfile(ctx context.Context, p entities.Profile) (entities.Profile, error)
	GetProfile(ctx context.Context, id string) (entities.Profile, error)

	PutContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetContact(ctx context.Context, id string) (entities.Contact, error)

	PutFinancial(ctx context.Context, f entities.Financial) (entities.Financial, error)
	GetFinancial(ctx context.Context, id string) (entities.Financial, error)

	PutEquipment(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	GetEquipment(ctx context.Context, id string) (entities.Equipment, error)
}
