// Package refdata holds the hardcoded reference data the engine is supplied
// with: the three-level category tree and the job list. Both are immutable
// and preloaded; they are not user-editable.
package refdata

import (
	"github.com/andriybobchuk/mooney/internal/core/domain"
)

// DefaultCategories builds the static category tree: two type categories
// (Expense, Income), their general categories and the subcategories under
// them. Exactly three levels, no cycles.
func DefaultCategories() *domain.CategorySet {
	expense := &domain.Category{ID: "expense", Title: "Expense", Type: domain.Expense, Emoji: "☺️"}
	income := &domain.Category{ID: "income", Title: "Income", Type: domain.Income, Emoji: "🥲"}

	groceries := &domain.Category{ID: "groceries", Title: "Groceries & Household", Type: domain.Expense, Emoji: "🛒", Parent: expense}

	joy := &domain.Category{ID: "joy", Title: "Joy", Type: domain.Expense, Emoji: "🎮", Parent: expense}
	business := &domain.Category{ID: "business", Title: "Business Expense", Type: domain.Expense, Emoji: "👨‍💻", Parent: expense}
	health := &domain.Category{ID: "health", Title: "Health", Type: domain.Expense, Emoji: "❤️", Parent: expense}
	sport := &domain.Category{ID: "sport", Title: "Sport", Type: domain.Expense, Emoji: "💪", Parent: expense}
	gifts := &domain.Category{ID: "gifts", Title: "Gifts", Type: domain.Expense, Emoji: "🎁", Parent: expense}
	housing := &domain.Category{ID: "housing", Title: "Housing", Type: domain.Expense, Emoji: "🏠", Parent: expense}
	tax := &domain.Category{ID: "tax", Title: "Tax", Type: domain.Expense, Emoji: "🏦", Parent: expense}
	transport := &domain.Category{ID: "transport", Title: "Transportation", Type: domain.Expense, Emoji: "🚲", Parent: expense}
	barber := &domain.Category{ID: "barber", Title: "Barber", Type: domain.Expense, Emoji: "💈", Parent: expense}
	clothing := &domain.Category{ID: "clothing", Title: "Clothing", Type: domain.Expense, Emoji: "👕", Parent: expense}
	reconciliation := &domain.Category{ID: "reconciliation", Title: "Account Reconciliation", Type: domain.Expense, Emoji: "💱", Parent: expense}
	subscriptions := &domain.Category{ID: "subscriptions", Title: "Subscriptions", Type: domain.Expense, Emoji: "🎧", Parent: expense}
	beverages := &domain.Category{ID: "beverages", Title: "Beverages", Type: domain.Expense, Emoji: "🥙", Parent: expense}

	salary := &domain.Category{ID: "salary", Title: "Salary", Type: domain.Income, Emoji: "💸", Parent: income}
	positiveReconciliation := &domain.Category{ID: "positive_reconciliation", Title: "Account Reconciliation", Type: domain.Income, Emoji: "💸", Parent: income}
	taxReturn := &domain.Category{ID: "tax_return", Title: "Tax Return", Type: domain.Income, Emoji: "💸", Parent: income}
	refund := &domain.Category{ID: "refund", Title: "Refund", Type: domain.Income, Emoji: "💸", Parent: income}

	categories := []*domain.Category{
		expense, income,
		groceries,
		joy, business, health, sport, gifts,
		housing, tax, transport,
		barber, clothing, reconciliation,
		subscriptions, beverages,
		salary, positiveReconciliation, taxReturn, refund,

		{ID: "joy_purchases", Title: "Purchases", Type: domain.Expense, Parent: joy},
		{ID: "joy_vacation", Title: "Vacation", Type: domain.Expense, Parent: joy},
		{ID: "joy_meetups", Title: "Meetups", Type: domain.Expense, Parent: joy},
		{ID: "joy_dates", Title: "Dates", Type: domain.Expense, Parent: joy},

		{ID: "business_equipment", Title: "Equipment", Type: domain.Expense, Parent: business},
		{ID: "business_courses", Title: "Courses", Type: domain.Expense, Parent: business},
		{ID: "business_meetups", Title: "Meetups", Type: domain.Expense, Parent: business},
		{ID: "business_communities", Title: "Paid Communities", Type: domain.Expense, Parent: business},
		{ID: "business_linkedin", Title: "LinkedIn", Type: domain.Expense, Parent: business},

		{ID: "health_massage", Title: "Massage", Type: domain.Expense, Parent: health},
		{ID: "health_medications", Title: "Medications", Type: domain.Expense, Parent: health},
		{ID: "health_doctor", Title: "Doctor’s Appointment", Type: domain.Expense, Parent: health},
		{ID: "health_exams", Title: "Examinations", Type: domain.Expense, Parent: health},

		{ID: "sport_gym", Title: "Gym", Type: domain.Expense, Parent: sport},
		{ID: "sport_pool", Title: "Pool", Type: domain.Expense, Parent: sport},
		{ID: "sport_equipment", Title: "Equipment", Type: domain.Expense, Parent: sport},
		{ID: "sport_supplements", Title: "Supplements", Type: domain.Expense, Parent: sport},
		{ID: "sport_boxing", Title: "Boxing", Type: domain.Expense, Parent: sport},

		{ID: "gifts_family", Title: "Family", Type: domain.Expense, Parent: gifts},
		{ID: "gifts_friends", Title: "Friends", Type: domain.Expense, Parent: gifts},
		{ID: "gifts_girlfriend", Title: "Girlfriend", Type: domain.Expense, Parent: gifts},

		{ID: "rent", Title: "Rent", Type: domain.Expense, Parent: housing},
		{ID: "mortgage", Title: "Mortgage", Type: domain.Expense, Parent: housing},
		{ID: "utilities", Title: "Utilities", Type: domain.Expense, Parent: housing},

		{ID: "zus", Title: "ZUS", Type: domain.Expense, Parent: tax},
		{ID: "pit", Title: "PIT", Type: domain.Expense, Parent: tax},
		{ID: "gov_fee", Title: "Government Fee", Type: domain.Expense, Parent: tax},

		{ID: "transport_bike", Title: "City Bike", Type: domain.Expense, Parent: transport},
		{ID: "transport_train", Title: "Train", Type: domain.Expense, Parent: transport},
		{ID: "transport_metro", Title: "Metro & Bus & Tram", Type: domain.Expense, Parent: transport},
		{ID: "transport_taxi", Title: "Taxi", Type: domain.Expense, Parent: transport},

		{ID: "shoes", Title: "Shoes", Type: domain.Expense, Parent: clothing},

		{ID: "spotify", Title: "Spotify", Type: domain.Expense, Parent: subscriptions},
		{ID: "internet", Title: "Phone & Internet", Type: domain.Expense, Parent: subscriptions},
		{ID: "apple", Title: "Apple", Type: domain.Expense, Parent: subscriptions},

		{ID: "pubs", Title: "Pubs", Type: domain.Expense, Parent: beverages},
		{ID: "eating_out", Title: "Eating Out", Type: domain.Expense, Parent: beverages},
		{ID: "soft_drinks", Title: "Soft Drinks & Snacks", Type: domain.Expense, Parent: beverages},
	}

	return domain.NewCategorySet(categories)
}
