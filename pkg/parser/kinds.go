package parser

import (
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
	"tableflip.dev/life/pkg/entity"
	"tableflip.dev/life/pkg/timeutil"
)

const msgNoEditFields = "At least one field to edit must be provided."

func parseContacts(verb, args string) (command.Command, error) {
	if c, ok, err := common(command.Contacts, verb, args); ok {
		return c, err
	}
	switch verb {
	case "add":
		a := tokenize(args, prefixName, prefixPhone, prefixEmail, prefixAddress, prefixTag)
		if a.preamble != "" || !a.has(prefixName) || !a.has(prefixPhone) || !a.has(prefixEmail) {
			return nil, invalid(verb)
		}
		name, _ := a.value(prefixName)
		phone, _ := a.value(prefixPhone)
		email, _ := a.value(prefixEmail)
		address, _ := a.value(prefixAddress)
		c, err := entity.NewContact(name, phone, email, address, a.all(prefixTag))
		if err != nil {
			return nil, fieldError(verb, err)
		}
		return command.Add[entity.Contact]{Of: command.Contacts, Item: c}, nil
	case "edit":
		a := tokenize(args, prefixName, prefixPhone, prefixEmail, prefixAddress, prefixTag)
		i, err := editIndex(a)
		if err != nil {
			return nil, err
		}
		return command.Edit[entity.Contact]{Of: command.Contacts, Index: i, Apply: func(cur entity.Contact) (entity.Contact, error) {
			name := valueOr(a, prefixName, cur.Name)
			phone := valueOr(a, prefixPhone, cur.Phone)
			email := valueOr(a, prefixEmail, cur.Email)
			address := valueOr(a, prefixAddress, cur.Address)
			return entity.NewContact(name, phone, email, address, tagsOr(a, cur.Tags))
		}}, nil
	case "find":
		return find(verb, args, command.Contacts, entity.Contact.Matches)
	case "sort":
		if args != "" && !strings.EqualFold(args, "name") {
			return nil, invalid(verb)
		}
		return command.Sort[entity.Contact]{Of: command.Contacts, By: "name", Cmp: entity.CompareContactName}, nil
	}
	return nil, unsupported(verb, collection.KindContacts)
}

func parseTasks(verb, args string) (command.Command, error) {
	if c, ok, err := common(command.Tasks, verb, args); ok {
		return c, err
	}
	switch verb {
	case "add":
		a := tokenize(args, prefixName, prefixDate, prefixTime, prefixTag)
		if a.preamble != "" || !a.has(prefixName) || !a.has(prefixDate) {
			return nil, invalid(verb)
		}
		name, _ := a.value(prefixName)
		raw, _ := a.value(prefixDate)
		deadline, err := entity.ParseDate(raw)
		if err != nil {
			return nil, fieldError(verb, err)
		}
		clock, _ := a.value(prefixTime)
		t, err := entity.NewTask(name, deadline, clock, a.all(prefixTag))
		if err != nil {
			return nil, fieldError(verb, err)
		}
		return command.Add[entity.Task]{Of: command.Tasks, Item: t}, nil
	case "edit":
		a := tokenize(args, prefixName, prefixDate, prefixTime, prefixTag)
		i, err := editIndex(a)
		if err != nil {
			return nil, err
		}
		var deadline *entity.Date
		if raw, ok := a.value(prefixDate); ok {
			d, err := entity.ParseDate(raw)
			if err != nil {
				return nil, fieldError(verb, err)
			}
			deadline = &d
		}
		return command.Edit[entity.Task]{Of: command.Tasks, Index: i, Apply: func(cur entity.Task) (entity.Task, error) {
			due := cur.Deadline
			if deadline != nil {
				due = *deadline
			}
			return entity.NewTask(valueOr(a, prefixName, cur.Name), due, valueOr(a, prefixTime, cur.Time), tagsOr(a, cur.Tags))
		}}, nil
	case "find":
		return find(verb, args, command.Tasks, entity.Task.Matches)
	case "sort":
		if args != "" && !strings.EqualFold(args, "deadline") {
			return nil, invalid(verb)
		}
		return command.Sort[entity.Task]{Of: command.Tasks, By: "deadline", Cmp: entity.CompareTaskDeadline}, nil
	}
	return nil, unsupported(verb, collection.KindTasks)
}

func parseTicked(verb, args string) (command.Command, error) {
	if c, ok, err := common(command.Ticked, verb, args); ok {
		return c, err
	}
	if verb == "add" {
		return nil, &command.ParseError{Msg: "Tasks can only be added to the ticked task list with tick", Usage: Usage("tick")}
	}
	return nil, unsupported(verb, collection.KindTicked)
}

func parsePurchases(verb, args string) (command.Command, error) {
	if c, ok, err := common(command.Purchases, verb, args); ok {
		return c, err
	}
	switch verb {
	case "add":
		a := tokenize(args, prefixName, prefixPrice, prefixDate, prefixTag)
		if a.preamble != "" || !a.has(prefixName) || !a.has(prefixPrice) || !a.has(prefixDate) {
			return nil, invalid(verb)
		}
		name, _ := a.value(prefixName)
		rawPrice, _ := a.value(prefixPrice)
		price, err := entity.ParsePrice(rawPrice)
		if err != nil {
			return nil, fieldError(verb, err)
		}
		rawDate, _ := a.value(prefixDate)
		date, err := entity.ParseDate(rawDate)
		if err != nil {
			return nil, fieldError(verb, err)
		}
		p, err := entity.NewPurchase(name, price, date, a.all(prefixTag))
		if err != nil {
			return nil, fieldError(verb, err)
		}
		return command.Add[entity.Purchase]{Of: command.Purchases, Item: p}, nil
	case "edit":
		a := tokenize(args, prefixName, prefixPrice, prefixDate, prefixTag)
		i, err := editIndex(a)
		if err != nil {
			return nil, err
		}
		var price *entity.Price
		if raw, ok := a.value(prefixPrice); ok {
			v, err := entity.ParsePrice(raw)
			if err != nil {
				return nil, fieldError(verb, err)
			}
			price = &v
		}
		var date *entity.Date
		if raw, ok := a.value(prefixDate); ok {
			d, err := entity.ParseDate(raw)
			if err != nil {
				return nil, fieldError(verb, err)
			}
			date = &d
		}
		return command.Edit[entity.Purchase]{Of: command.Purchases, Index: i, Apply: func(cur entity.Purchase) (entity.Purchase, error) {
			next := cur
			if price != nil {
				next.Price = *price
			}
			if date != nil {
				next.Date = *date
			}
			return entity.NewPurchase(valueOr(a, prefixName, cur.Name), next.Price, next.Date, tagsOr(a, cur.Tags))
		}}, nil
	case "find":
		return find(verb, args, command.Purchases, entity.Purchase.Matches)
	case "sort":
		switch strings.ToLower(args) {
		case "", "date":
			return command.Sort[entity.Purchase]{Of: command.Purchases, By: "date", Cmp: entity.ComparePurchaseDate}, nil
		case "price":
			return command.Sort[entity.Purchase]{Of: command.Purchases, By: "price", Cmp: entity.ComparePurchasePrice}, nil
		}
		return nil, invalid(verb)
	}
	return nil, unsupported(verb, collection.KindPurchases)
}

func parseWorkouts(verb, args string) (command.Command, error) {
	if c, ok, err := common(command.Workouts, verb, args); ok {
		return c, err
	}
	if verb != "add" {
		return nil, unsupported(verb, collection.KindWorkouts)
	}
	a := tokenize(args, prefixName, prefixSets, prefixReps, prefixDuration, prefixDate)
	for _, required := range []string{prefixName, prefixSets, prefixReps, prefixDuration, prefixDate} {
		if !a.has(required) {
			return nil, invalid(verb)
		}
	}
	if a.preamble != "" {
		return nil, invalid(verb)
	}
	name, _ := a.value(prefixName)
	sets, err := count(a, prefixSets, "sets")
	if err != nil {
		return nil, fieldError(verb, err)
	}
	reps, err := count(a, prefixReps, "reps")
	if err != nil {
		return nil, fieldError(verb, err)
	}
	rawDuration, _ := a.value(prefixDuration)
	duration, err := timeutil.ParseDuration(rawDuration)
	if err != nil {
		return nil, fieldError(verb, err)
	}
	rawDate, _ := a.value(prefixDate)
	date, err := entity.ParseDate(rawDate)
	if err != nil {
		return nil, fieldError(verb, err)
	}
	w, err := entity.NewWorkout(name, sets, reps, duration, date)
	if err != nil {
		return nil, fieldError(verb, err)
	}
	return command.Add[entity.Workout]{Of: command.Workouts, Item: w}, nil
}

func parseHabits(verb, args string) (command.Command, error) {
	if c, ok, err := common(command.Habits, verb, args); ok {
		return c, err
	}
	switch verb {
	case "add":
		a := tokenize(args, prefixName, prefixStreak, prefixTag)
		if a.preamble != "" || !a.has(prefixName) {
			return nil, invalid(verb)
		}
		streak := 0
		if a.has(prefixStreak) {
			n, err := count(a, prefixStreak, "streak")
			if err != nil {
				return nil, fieldError(verb, err)
			}
			streak = n
		}
		title, _ := a.value(prefixName)
		h, err := entity.NewHabit(title, streak, a.all(prefixTag))
		if err != nil {
			return nil, fieldError(verb, err)
		}
		return command.Add[entity.Habit]{Of: command.Habits, Item: h}, nil
	case "edit":
		a := tokenize(args, prefixName, prefixStreak, prefixTag)
		i, err := editIndex(a)
		if err != nil {
			return nil, err
		}
		streak := -1
		if a.has(prefixStreak) {
			if streak, err = count(a, prefixStreak, "streak"); err != nil {
				return nil, fieldError(verb, err)
			}
		}
		return command.Edit[entity.Habit]{Of: command.Habits, Index: i, Apply: func(cur entity.Habit) (entity.Habit, error) {
			next := cur.Streak
			if streak >= 0 {
				next = streak
			}
			return entity.NewHabit(valueOr(a, prefixName, cur.Title), next, tagsOr(a, cur.Tags))
		}}, nil
	case "find":
		return find(verb, args, command.Habits, entity.Habit.Matches)
	}
	return nil, unsupported(verb, collection.KindHabits)
}

func find[E command.Item[E]](verb, args string, of command.Binding[E], match func(E, []string) bool) (command.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, invalid(verb)
	}
	return command.Find[E]{Of: of, Keywords: keywords, Match: match}, nil
}

func editIndex(a arguments) (command.Index, error) {
	i, err := parseIndex("edit", a.preamble)
	if err != nil {
		return 0, err
	}
	if a.empty() {
		return 0, &command.ParseError{Msg: msgNoEditFields, Usage: Usage("edit")}
	}
	return i, nil
}

func valueOr(a arguments, prefix, current string) string {
	if v, ok := a.value(prefix); ok {
		return v
	}
	return current
}

// tagsOr replaces the tags when any t/ was given; a lone empty "t/" clears them.
func tagsOr(a arguments, current []string) []string {
	if !a.has(prefixTag) {
		return current
	}
	return a.all(prefixTag)
}

func count(a arguments, prefix, label string) (int, error) {
	raw, _ := a.value(prefix)
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s should be a non-negative whole number, got %q", entity.ErrInvalidField, label, raw)
	}
	return n, nil
}
