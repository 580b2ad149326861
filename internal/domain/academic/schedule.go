package academic

import (
	"github.com/alem-hub/university-registry/internal/domain/shared"
)

// Slot places a course in a classroom at a time.
type Slot struct {
	Course    shared.CourseRef
	Classroom shared.ClassroomRef
	TimeSlot  string
}

// Schedule is the ordered timetable. Overlapping slots are not detected.
type Schedule struct {
	slots []Slot
}

// NewSchedule creates an empty timetable.
func NewSchedule() *Schedule {
	return &Schedule{}
}

// AddCourseSchedule appends a slot.
func (s *Schedule) AddCourseSchedule(course shared.CourseRef, room shared.ClassroomRef, timeSlot string) {
	s.slots = append(s.slots, Slot{Course: course, Classroom: room, TimeSlot: timeSlot})
}

// Slots returns a copy of every slot in insertion order.
func (s *Schedule) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// ForCourse returns the slots of one course.
func (s *Schedule) ForCourse(course shared.CourseRef) []Slot {
	var out []Slot
	for _, slot := range s.slots {
		if slot.Course == course {
			out = append(out, slot)
		}
	}
	return out
}

// RemoveCourse drops every slot of course and returns how many were dropped.
func (s *Schedule) RemoveCourse(course shared.CourseRef) int {
	return s.removeWhere(func(slot Slot) bool { return slot.Course == course })
}

// RemoveClassroom drops every slot using room and returns how many were dropped.
func (s *Schedule) RemoveClassroom(room shared.ClassroomRef) int {
	return s.removeWhere(func(slot Slot) bool { return slot.Classroom == room })
}

func (s *Schedule) removeWhere(match func(Slot) bool) int {
	kept := s.slots[:0]
	removed := 0
	for _, slot := range s.slots {
		if match(slot) {
			removed++
			continue
		}
		kept = append(kept, slot)
	}
	s.slots = kept
	return removed
}
