// Package console formats registry data for a terminal.
package console

import (
	"fmt"
	"io"

	"github.com/alem-hub/university-registry/internal/domain/academic"
)

// FormatPayment renders an amount with two decimals, e.g. "Payment: $6000.00".
func FormatPayment(amount float64) string {
	return fmt.Sprintf("Payment: $%.2f", amount)
}

// FormatGradeStats renders the average and highest grade of gb.
func FormatGradeStats(gb *academic.GradeBook) []string {
	return []string{
		fmt.Sprintf("Average Grade: %.2f", gb.AverageGrade()),
		fmt.Sprintf("Highest Grade: %.2f", gb.HighestGrade()),
	}
}

// Presenter writes lines to w. The first write error is kept and every
// later call becomes a no-op.
type Presenter struct {
	w   io.Writer
	err error
}

// NewPresenter creates a presenter writing to w.
func NewPresenter(w io.Writer) *Presenter {
	return &Presenter{w: w}
}

// Heading writes a blank line followed by "<title>:".
func (p *Presenter) Heading(title string) {
	p.println("")
	p.println(title + ":")
}

// PersonCard writes the display lines of a person and their payment.
func (p *Presenter) PersonCard(details []string, payment float64) {
	for _, line := range details {
		p.println(line)
	}
	p.println(FormatPayment(payment))
}

// GradeStatistics writes the grade summary of gb.
func (p *Presenter) GradeStatistics(gb *academic.GradeBook) {
	for _, line := range FormatGradeStats(gb) {
		p.println(line)
	}
}

// Err returns the first write error, if any.
func (p *Presenter) Err() error {
	return p.err
}

func (p *Presenter) println(line string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, line)
}
