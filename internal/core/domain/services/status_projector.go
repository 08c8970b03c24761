package services

import (
	"storeadmin/internal/core/domain/model/order"
)

// Tier is the severity variant a badge is rendered with.
type Tier string

const (
	TierOutline     Tier = "outline"
	TierSecondary   Tier = "secondary"
	TierDefault     Tier = "default"
	TierSuccess     Tier = "success"
	TierDestructive Tier = "destructive"
)

// Icon keys understood by the dashboard's icon set.
const (
	IconClock   = "clock"
	IconPackage = "package"
	IconTruck   = "truck"
	IconCheck   = "check"
	IconXCircle = "x-circle"
)

// Badge describes how a status is rendered in lists and dialogs.
type Badge struct {
	Status order.Status
	Tier   Tier
	Icon   string
	Label  string
}

// Segment is one cell of the progress bar.
type Segment struct {
	Label  string
	Filled bool
}

// Progress is the fill state of the pending→delivered bar.
// A cancelled order has every segment empty and Cancelled set.
type Progress struct {
	Position  int
	Segments  []Segment
	Cancelled bool
}

var badges = map[order.Status]Badge{
	order.Pending:    {Status: order.Pending, Tier: TierOutline, Icon: IconClock, Label: "Pending"},
	order.Processing: {Status: order.Processing, Tier: TierSecondary, Icon: IconPackage, Label: "Processing"},
	order.Shipped:    {Status: order.Shipped, Tier: TierDefault, Icon: IconTruck, Label: "Shipped"},
	order.Delivered:  {Status: order.Delivered, Tier: TierSuccess, Icon: IconCheck, Label: "Delivered"},
	order.Cancelled:  {Status: order.Cancelled, Tier: TierDestructive, Icon: IconXCircle, Label: "Cancelled"},
}

// StatusProjector turns a status into display descriptors.
//
// Both methods are total over the five valid statuses and reject anything else
// with errs.ValueIsInvalidError. There is no fallback badge: an invalid status
// is a data error and must surface as one.
//
// Example:
//
//	p := services.NewStatusProjector()
//	badge, err := p.Describe(order.Shipped)
//	// badge.Label == "Shipped", badge.Icon == "truck"
type StatusProjector struct{}

func NewStatusProjector() StatusProjector {
	return StatusProjector{}
}

// Describe returns the badge for status.
func (StatusProjector) Describe(status order.Status) (Badge, error) {
	if err := status.Validate(); err != nil {
		return Badge{}, err
	}
	return badges[status], nil
}

// Progress returns the progress bar for status. Segment i is filled iff
// status.Position() >= i.
func (p StatusProjector) Progress(status order.Status) (Progress, error) {
	if err := status.Validate(); err != nil {
		return Progress{}, err
	}

	position := status.Position()
	path := []order.Status{order.Pending, order.Processing, order.Shipped, order.Delivered}

	segments := make([]Segment, 0, order.ProgressSteps)
	for i, step := range path {
		segments = append(segments, Segment{
			Label:  badges[step].Label,
			Filled: position >= i,
		})
	}

	return Progress{
		Position:  position,
		Segments:  segments,
		Cancelled: position == order.NotOnPath,
	}, nil
}
