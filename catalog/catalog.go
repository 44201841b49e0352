// Package catalog defines the records of the course catalogue: courses,
// their authors and their tags.
package catalog

import "fmt"

// CourseLevel is the difficulty of a course.
type CourseLevel int

const (
	Beginner     CourseLevel = 1
	Intermediate CourseLevel = 2
	Advanced     CourseLevel = 3
)

func (l CourseLevel) String() string {
	switch l {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Author writes courses.
type Author struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Tag labels courses. Tags are compared by value.
type Tag struct {
	ID   int    `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Course is a catalogue entry. Author is resolved from AuthorID by the
// store; Tags are resolved from tag IDs when loading.
type Course struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Level       CourseLevel `json:"level"`
	FullPrice   float64     `json:"fullPrice"`
	AuthorID    int         `json:"authorId"`
	Author      *Author     `json:"author,omitempty"`
	Tags        []Tag       `json:"tags,omitempty"`
}

// AuthorName returns the resolved author's name, or "" when the author
// has not been resolved.
func (c Course) AuthorName() string {
	if c.Author == nil {
		return ""
	}
	return c.Author.Name
}

// Catalog is a complete, unresolved set of records as loaded from a data
// file.
type Catalog struct {
	Authors []Author
	Tags    []Tag
	Courses []Course
}
