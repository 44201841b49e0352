package walkthrough

import (
	"fmt"

	"github.com/vegasq/seqcat/catalog"
	"github.com/vegasq/seqcat/query"
)

// Projections print like anonymous records: "{ Field = value, ... }".

type NameAuthor struct {
	Name   string
	Author string
}

func (p NameAuthor) String() string {
	return fmt.Sprintf("{ Name = %s, Author = %s }", p.Name, p.Author)
}

func (p NameAuthor) Row() query.Row {
	return query.Row{"name": p.Name, "author": p.Author}
}

type CourseAuthor struct {
	CourseName string
	AuthorName string
}

func (p CourseAuthor) String() string {
	return fmt.Sprintf("{ CourseName = %s, AuthorName = %s }", p.CourseName, p.AuthorName)
}

func (p CourseAuthor) Row() query.Row {
	return query.Row{"courseName": p.CourseName, "authorName": p.AuthorName}
}

// AuthorCourse is a cross join pair.
type AuthorCourse struct {
	AuthorName string
	CourseName string
}

func (p AuthorCourse) String() string {
	return p.AuthorName + " - " + p.CourseName
}

func (p AuthorCourse) Row() query.Row {
	return query.Row{"authorName": p.AuthorName, "courseName": p.CourseName}
}

type AuthorCourseCount struct {
	AuthorName string
	Courses    int
}

func (p AuthorCourseCount) String() string {
	return fmt.Sprintf("%s (%d)", p.AuthorName, p.Courses)
}

func (p AuthorCourseCount) Row() query.Row {
	return query.Row{"authorName": p.AuthorName, "courses": p.Courses}
}

type AuthorCourses struct {
	AuthorName string
	Courses    []catalog.Course
}

func courseRow(c catalog.Course) query.Row {
	return query.Row{
		"id":        c.ID,
		"name":      c.Name,
		"level":     int(c.Level),
		"fullPrice": c.FullPrice,
		"author":    c.AuthorName(),
	}
}

func tagRow(t catalog.Tag) query.Row {
	return query.Row{"id": t.ID, "name": t.Name}
}

func courseName(c catalog.Course) string { return c.Name }

func courseNames(courses []catalog.Course) []string {
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = c.Name
	}
	return names
}

func tagName(t catalog.Tag) string { return t.Name }

type record interface {
	fmt.Stringer
	Row() query.Row
}

func recordLine[R record](r R) string { return r.String() }

func recordRow[R record](r R) query.Row { return r.Row() }
