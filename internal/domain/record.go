package domain

import "time"

// Record is the contract id-keyed entities expose to the generic content
// service: identity plus the server-set timestamps. Category and Setting
// are keyed by name/key instead and do not participate.
type Record interface {
	RecordID() string
	SetRecordID(id string)
	StampCreated(t time.Time)
	StampUpdated(t time.Time)
}

func (e *Event) RecordID() string          { return e.ID }
func (e *Event) SetRecordID(id string)     { e.ID = id }
func (e *Event) StampCreated(t time.Time)  { e.CreatedAt = t }
func (e *Event) StampUpdated(t time.Time)  { e.UpdatedAt = t }

func (p *Publication) RecordID() string         { return p.ID }
func (p *Publication) SetRecordID(id string)    { p.ID = id }
func (p *Publication) StampCreated(t time.Time) { p.CreatedAt = t }
func (p *Publication) StampUpdated(t time.Time) { p.UpdatedAt = t }

func (g *GalleryImage) RecordID() string         { return g.ID }
func (g *GalleryImage) SetRecordID(id string)    { g.ID = id }
func (g *GalleryImage) StampCreated(t time.Time) { g.CreatedAt = t }
func (g *GalleryImage) StampUpdated(t time.Time) { g.UpdatedAt = t }

func (m *TeamMember) RecordID() string         { return m.ID }
func (m *TeamMember) SetRecordID(id string)    { m.ID = id }
func (m *TeamMember) StampCreated(t time.Time) { m.CreatedAt = t }
func (m *TeamMember) StampUpdated(t time.Time) { m.UpdatedAt = t }

func (e *TimelineEntry) RecordID() string         { return e.ID }
func (e *TimelineEntry) SetRecordID(id string)    { e.ID = id }
func (e *TimelineEntry) StampCreated(t time.Time) { e.CreatedAt = t }
func (e *TimelineEntry) StampUpdated(t time.Time) { e.UpdatedAt = t }
