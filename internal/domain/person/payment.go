package person

// FeeSchedule holds every amount used by payment calculation.
type FeeSchedule struct {
	BaseTuition         float64 // per semester, every student
	UndergraduateFee    float64
	GraduateResearchFee float64

	ProfessorBaseSalary float64
	PerYearOfService    float64
	PerPublication      float64 // assistant professors
	PerGrant            float64 // associate professors
	TenureBonus         float64 // tenured full professors
}

// DefaultFeeSchedule returns the standard amounts.
func DefaultFeeSchedule() FeeSchedule {
	return FeeSchedule{
		BaseTuition:         5000.0,
		UndergraduateFee:    1000.0,
		GraduateResearchFee: 2000.0,
		ProfessorBaseSalary: 50000.0,
		PerYearOfService:    1000.0,
		PerPublication:      500.0,
		PerGrant:            1000.0,
		TenureBonus:         20000.0,
	}
}

// PaymentCalculator computes what a person pays (students) or is paid
// (professors) under a fee schedule.
type PaymentCalculator struct {
	fees FeeSchedule
}

// NewPaymentCalculator creates a calculator bound to fees.
func NewPaymentCalculator(fees FeeSchedule) PaymentCalculator {
	return PaymentCalculator{fees: fees}
}

// Fees returns the schedule in use.
func (c PaymentCalculator) Fees() FeeSchedule {
	return c.fees
}

// Payment returns the amount for p. Each kind takes its parent's amount
// and adds its own delta.
func (c PaymentCalculator) Payment(p *Person) float64 {
	switch p.kind {
	case KindStudent:
		return c.student(p)
	case KindUndergraduate:
		return c.student(p) + c.fees.UndergraduateFee
	case KindGraduate:
		return c.student(p) + c.fees.GraduateResearchFee
	case KindProfessor:
		return c.professor(p)
	case KindAssistantProfessor:
		return c.professor(p) + c.fees.PerPublication*float64(p.professor.Publications)
	case KindAssociateProfessor:
		return c.professor(p) + c.fees.PerGrant*float64(p.professor.Grants)
	case KindFullProfessor:
		if p.professor.Tenured {
			return c.professor(p) + c.fees.TenureBonus
		}
		return c.professor(p)
	default:
		return c.person(p)
	}
}

func (c PaymentCalculator) person(*Person) float64 {
	return 0.0
}

func (c PaymentCalculator) student(p *Person) float64 {
	return c.person(p) + c.fees.BaseTuition
}

func (c PaymentCalculator) professor(p *Person) float64 {
	return c.person(p) + c.fees.ProfessorBaseSalary +
		c.fees.PerYearOfService*float64(p.professor.YearsOfService)
}

// CalculatePayment returns the payment under DefaultFeeSchedule.
func (p *Person) CalculatePayment() float64 {
	return NewPaymentCalculator(DefaultFeeSchedule()).Payment(p)
}
