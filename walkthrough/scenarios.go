package walkthrough

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vegasq/seqcat/catalog"
	"github.com/vegasq/seqcat/query"
	"github.com/vegasq/seqcat/store"
)

func aboutCSharp(c catalog.Course) bool {
	return strings.Contains(strings.ToLower(c.Name), "c#")
}

func beginner(c catalog.Course) bool { return c.Level == catalog.Beginner }

func byMosh(c catalog.Course) bool { return c.AuthorID == 1 }

func level(c catalog.Course) catalog.CourseLevel { return c.Level }

func fullPrice(c catalog.Course) float64 { return c.FullPrice }

func formatPrice(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func courses(s query.Sequence[catalog.Course]) (Result, error) {
	return list(s, courseName, courseRow)
}

func records[R record](s query.Sequence[R]) (Result, error) {
	return list(s, recordLine[R], recordRow[R])
}

func levelGroups(ctx *store.Context, header func(catalog.CourseLevel) string) (Result, error) {
	var res Result
	err := query.GroupBy(ctx.Courses(), level).ForEach(func(g query.Group[catalog.CourseLevel, catalog.Course]) error {
		names := courseNames(g.Elements)
		nested(&res, header(g.Key), names, query.Row{"key": int(g.Key), "count": g.Count(), "courses": names})
		return nil
	})
	return res, err
}

func innerJoin(ctx *store.Context) query.Sequence[CourseAuthor] {
	return query.Join(ctx.Courses(), ctx.Authors(),
		func(c catalog.Course) int { return c.AuthorID },
		func(a catalog.Author) int { return a.ID },
		func(c catalog.Course, a catalog.Author) CourseAuthor {
			return CourseAuthor{CourseName: c.Name, AuthorName: a.Name}
		})
}

func crossJoin(ctx *store.Context) query.Sequence[AuthorCourse] {
	return query.CrossJoin(ctx.Authors(), ctx.Courses(), func(a catalog.Author, c catalog.Course) AuthorCourse {
		return AuthorCourse{AuthorName: a.Name, CourseName: c.Name}
	})
}

// beginnersByName is the shared prefix of the method chaining examples.
func beginnersByName(ctx *store.Context) query.Ordered[catalog.Course] {
	return query.ThenByDescending(query.OrderByDescending(ctx.Courses().Where(beginner), courseName), level)
}

var scenarios = []Scenario{
	{
		Name:  "filter-order",
		Title: "Courses about C#, ordered by name",
		eval: func(ctx *store.Context) (Result, error) {
			return courses(query.OrderBy(ctx.Courses().Where(aboutCSharp), courseName).Sequence)
		},
	},
	{
		Name:  "level-filter",
		Title: "Beginner courses, from the level index",
		eval: func(ctx *store.Context) (Result, error) {
			return courses(ctx.CoursesByLevel(catalog.Beginner))
		},
	},
	{
		Name:  "author-order",
		Title: "Mosh's courses by level descending, then name",
		eval: func(ctx *store.Context) (Result, error) {
			return courses(query.ThenBy(query.OrderByDescending(ctx.CoursesByAuthor(1), level), courseName).Sequence)
		},
	},
	{
		Name:  "author-projection",
		Title: "Mosh's courses projected to name and author",
		eval: func(ctx *store.Context) (Result, error) {
			ordered := query.ThenBy(query.OrderByDescending(ctx.Courses().Where(byMosh), level), courseName)
			return records(query.Select(ordered.Sequence, func(c catalog.Course) NameAuthor {
				return NameAuthor{Name: c.Name, Author: c.AuthorName()}
			}))
		},
	},
	{
		Name:  "group-by-level",
		Title: "Courses grouped by level",
		eval: func(ctx *store.Context) (Result, error) {
			return levelGroups(ctx, func(k catalog.CourseLevel) string { return strconv.Itoa(int(k)) })
		},
	},
	{
		Name:  "inner-join",
		Title: "Courses joined with their authors",
		eval: func(ctx *store.Context) (Result, error) {
			return records(innerJoin(ctx))
		},
	},
	{
		Name:  "group-join-count",
		Title: "Authors with their number of courses",
		eval: func(ctx *store.Context) (Result, error) {
			return records(query.GroupJoin(ctx.Authors(), ctx.Courses(),
				func(a catalog.Author) int { return a.ID },
				func(c catalog.Course) int { return c.AuthorID },
				func(a catalog.Author, cs []catalog.Course) AuthorCourseCount {
					return AuthorCourseCount{AuthorName: a.Name, Courses: len(cs)}
				}))
		},
	},
	{
		Name:  "cross-join",
		Title: "Every author paired with every course",
		eval: func(ctx *store.Context) (Result, error) {
			return records(crossJoin(ctx))
		},
	},
	{
		Name:  "method-filter-order",
		Title: "Courses about C#, ordered by name, chained",
		eval: func(ctx *store.Context) (Result, error) {
			return courses(query.OrderBy(ctx.Courses().Where(aboutCSharp), courseName).Sequence)
		},
	},
	{
		Name:  "method-level-filter",
		Title: "Beginner courses, filtered",
		eval: func(ctx *store.Context) (Result, error) {
			return courses(ctx.Courses().Where(beginner))
		},
	},
	{
		Name:  "method-order",
		Title: "Beginner courses by name descending, then level descending",
		eval: func(ctx *store.Context) (Result, error) {
			return courses(beginnersByName(ctx).Sequence)
		},
	},
	{
		Name:  "method-projection",
		Title: "Beginner courses projected to course and author",
		eval: func(ctx *store.Context) (Result, error) {
			return records(query.Select(beginnersByName(ctx).Sequence, func(c catalog.Course) CourseAuthor {
				return CourseAuthor{CourseName: c.Name, AuthorName: c.AuthorName()}
			}))
		},
	},
	{
		Name:  "select-many-tags",
		Title: "Tags of the beginner courses, flattened",
		eval: func(ctx *store.Context) (Result, error) {
			tags := query.SelectManySlice(beginnersByName(ctx).Sequence, func(c catalog.Course) []catalog.Tag { return c.Tags })
			return list(tags, tagName, tagRow)
		},
	},
	{
		Name:  "distinct-tags",
		Title: "Distinct tags of the beginner courses",
		eval: func(ctx *store.Context) (Result, error) {
			tags := query.SelectManySlice(beginnersByName(ctx).Sequence, func(c catalog.Course) []catalog.Tag { return c.Tags })
			return list(query.Distinct(tags), tagName, tagRow)
		},
	},
	{
		Name:  "method-group-by",
		Title: "Courses grouped by level, chained",
		eval: func(ctx *store.Context) (Result, error) {
			return levelGroups(ctx, func(k catalog.CourseLevel) string { return fmt.Sprintf("Key: %d", int(k)) })
		},
	},
	{
		Name:  "method-inner-join",
		Title: "Courses joined with their authors, chained",
		eval: func(ctx *store.Context) (Result, error) {
			return records(innerJoin(ctx))
		},
	},
	{
		Name:  "method-group-join",
		Title: "Authors with their courses",
		eval: func(ctx *store.Context) (Result, error) {
			joined := query.GroupJoin(ctx.Authors(), ctx.Courses(),
				func(a catalog.Author) int { return a.ID },
				func(c catalog.Course) int { return c.AuthorID },
				func(a catalog.Author, cs []catalog.Course) AuthorCourses {
					return AuthorCourses{AuthorName: a.Name, Courses: cs}
				})

			var res Result
			err := joined.ForEach(func(ac AuthorCourses) error {
				names := courseNames(ac.Courses)
				nested(&res, ac.AuthorName, names, query.Row{"authorName": ac.AuthorName, "courses": names})
				return nil
			})
			return res, err
		},
	},
	{
		Name:  "method-cross-join",
		Title: "Every author paired with every course, chained",
		eval: func(ctx *store.Context) (Result, error) {
			return records(query.SelectManyWith(ctx.Authors(),
				func(catalog.Author) query.Sequence[catalog.Course] { return ctx.Courses() },
				func(a catalog.Author, c catalog.Course) AuthorCourse {
					return AuthorCourse{AuthorName: a.Name, CourseName: c.Name}
				}))
		},
	},
	{
		Name:  "paging",
		Title: "The second page of three courses",
		eval: func(ctx *store.Context) (Result, error) {
			return courses(ctx.Courses().Skip(3).Take(3))
		},
	},
	{
		Name:  "first-over-100",
		Title: "The first course over $100, by level",
		eval: func(ctx *store.Context) (Result, error) {
			found, err := query.OrderBy(ctx.Courses(), level).FirstOrDefault(func(c catalog.Course) bool { return c.FullPrice > 100 })
			if err != nil {
				return Result{}, err
			}
			return optionalCourse(found), nil
		},
	},
	{
		Name:  "single-by-id",
		Title: "The course with ID 1",
		eval: func(ctx *store.Context) (Result, error) {
			found, err := ctx.Courses().SingleOrDefault(func(c catalog.Course) bool { return c.ID == 1 })
			if err != nil {
				return Result{}, err
			}
			return optionalCourse(found), nil
		},
	},
	{
		Name:  "all-above-10",
		Title: "Do all courses cost more than $10?",
		eval: func(ctx *store.Context) (Result, error) {
			ok, err := ctx.Courses().All(func(c catalog.Course) bool { return c.FullPrice > 10 })
			return value(ok, strconv.FormatBool(ok)), err
		},
	},
	{
		Name:  "any-beginner",
		Title: "Is there any beginner course?",
		eval: func(ctx *store.Context) (Result, error) {
			ok, err := ctx.Courses().Any(beginner)
			return value(ok, strconv.FormatBool(ok)), err
		},
	},
	{
		Name:  "count-beginner",
		Title: "Number of beginner courses",
		eval: func(ctx *store.Context) (Result, error) {
			n, err := ctx.Courses().Where(beginner).Count()
			return value(n, strconv.Itoa(n)), err
		},
	},
	{
		Name:  "max-price",
		Title: "Highest course price, evaluated twice",
		eval: func(ctx *store.Context) (Result, error) {
			all := ctx.Courses()
			var res Result
			for range 2 {
				highest, err := query.Max(all, fullPrice)
				if err != nil {
					return Result{}, err
				}
				res.Lines = append(res.Lines, formatPrice(highest))
				res.Rows = append(res.Rows, query.Row{"result": highest})
			}
			return res, nil
		},
	},
	{
		Name:  "average-price",
		Title: "Average course price",
		eval: func(ctx *store.Context) (Result, error) {
			avg, err := query.Average(ctx.Courses(), fullPrice)
			return value(avg, strconv.FormatFloat(avg, 'f', 2, 64)), err
		},
	},
}

func optionalCourse(found query.Optional[catalog.Course]) Result {
	c, ok := found.Get()
	if !ok {
		return Result{Lines: []string{"(none)"}}
	}
	return Result{Lines: []string{c.Name}, Rows: []query.Row{courseRow(c)}}
}
