package admin

import "context"

type OrganizationRepository interface {
	Create(ctx context.Context, o *Organization) error
	List(ctx context.Context) ([]*Organization, error)
	Update(ctx context.Context, id string, req OrganizationRequest) (*Organization, error)
	Delete(ctx context.Context, id string) error
}

type DayProgramRepository interface {
	Create(ctx context.Context, p *DayProgram) error
	List(ctx context.Context) ([]*DayProgram, error)
	Update(ctx context.Context, id string, req DayProgramRequest) (*DayProgram, error)
	Delete(ctx context.Context, id string) error
}
