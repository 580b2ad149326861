package academic

// Classroom is a room courses can be scheduled into.
type Classroom struct {
	roomNumber string
	capacity   int
}

// NewClassroom creates a classroom.
func NewClassroom(roomNumber string, capacity int) *Classroom {
	return &Classroom{roomNumber: roomNumber, capacity: capacity}
}

// RoomNumber returns the room label.
func (r *Classroom) RoomNumber() string { return r.roomNumber }

// Capacity returns the seat count.
func (r *Classroom) Capacity() int { return r.capacity }
