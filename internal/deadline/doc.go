// Package deadline classifies maintenance deadlines as ok, warning or
// overdue and describes the remaining time and distance.
//
// A Deadline carries an optional due date and an optional due mileage. It is
// built from one of two sources:
//
//   - a user Reminder, whose due date and km are stored directly;
//   - a fixed maintenance Interval, projected forward from the most recent
//     maintenance entry of that category.
//
// Each axis is classified on its own and the worse status wins. Every
// function here is pure: the same inputs always give the same Result and no
// input is modified. Malformed or missing dates drop the date axis instead
// of failing.
package deadline
