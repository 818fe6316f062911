package i18n

// translations is the static key → locale → string catalogue. Keys use
// plain {name} placeholders substituted at lookup time.
var translations = map[string]map[Locale]string{
	// General
	"appName":      {English: "Finance Tracker", Tamil: "நிதி டிராக்கர்"},
	"rupeeSymbol":  {English: "₹", Tamil: "₹"},
	"today":        {English: "Today", Tamil: "இன்று"},
	"yesterday":    {English: "Yesterday", Tamil: "நேற்று"},
	"thisMonth":    {English: "This Month", Tamil: "இந்த மாதம்"},
	"summary":      {English: "Summary", Tamil: "சுருக்கம்"},
	"save":         {English: "Save", Tamil: "சேமி"},
	"cancel":       {English: "Cancel", Tamil: "ரத்துசெய்"},
	"close":        {English: "Close", Tamil: "மூடு"},
	"all":          {English: "All", Tamil: "அனைத்தும்"},

	// Expense types
	"dailyExpense":      {English: "Daily", Tamil: "தினசரி"},
	"creditCardExpense": {English: "Credit Card", Tamil: "கிரெடிட் கார்டு"},
	"specialExpense":    {English: "Special", Tamil: "சிறப்பு"},
	"daily":             {English: "Daily", Tamil: "தினசரி"},
	"creditCard":        {English: "Credit Card", Tamil: "கிரெடிட் கார்டு"},
	"special":           {English: "Special", Tamil: "சிறப்பு"},

	// Expense fields
	"dateAndTime":   {English: "Date & Time", Tamil: "தேதி மற்றும் நேரம்"},
	"date":          {English: "Date", Tamil: "தேதி"},
	"type":          {English: "Type", Tamil: "வகை"},
	"amount":        {English: "Amount", Tamil: "தொகை"},
	"purpose":       {English: "Purpose / Category", Tamil: "நோக்கம் / வகை"},
	"paymentMethod": {English: "Payment Method", Tamil: "பணம் செலுத்தும் முறை"},
	"optionalNotes": {English: "Optional Notes", Tamil: "விருப்பக்குறிப்புகள்"},
	"remindMeLater": {English: "Remind Me Later", Tamil: "பின்னர் நினைவூட்டு"},
	"cash":          {English: "Cash", Tamil: "பணம்"},
	"card":          {English: "Card", Tamil: "அட்டை"},
	"upi":           {English: "UPI", Tamil: "UPI"},

	// Mutation outcomes
	"expenseSaved":         {English: "Expense saved successfully!", Tamil: "செலவு வெற்றிகரமாக சேமிக்கப்பட்டது!"},
	"expenseUpdated":       {English: "Expense updated successfully!", Tamil: "செலவு வெற்றிகரமாக புதுப்பிக்கப்பட்டது!"},
	"expenseDeleted":       {English: "Expense deleted successfully!", Tamil: "செலவு வெற்றிகரமாக நீக்கப்பட்டது!"},
	"errorSavingExpense":   {English: "Error saving expense.", Tamil: "செலவைச் சேமிப்பதில் பிழை."},
	"errorUpdatingExpense": {English: "Error updating expense.", Tamil: "செலவைப் புதுப்பிப்பதில் பிழை."},
	"errorDeletingExpense": {English: "Error deleting expense.", Tamil: "செலவை நீக்குவதில் பிழை."},
	"validationError":      {English: "Please fill all required fields correctly.", Tamil: "தேவையான அனைத்து புலங்களையும் சரியாக நிரப்பவும்."},
	"amountPositive":       {English: "Amount must be a positive number.", Tamil: "தொகை நேர்மறை எண்ணாக இருக்க வேண்டும்."},

	// Dashboard and monthly summary
	"monthlyDashboard":        {English: "Monthly Dashboard", Tamil: "மாதாந்திர டாஷ்போர்டு"},
	"monthlySummaryTitle":     {English: "Monthly Summary", Tamil: "மாதாந்திர சுருக்கம்"},
	"monthlySummaryForMonth":  {English: "Monthly Summary for {month}", Tamil: "{month} க்கான மாதாந்திர சுருக்கம்"},
	"totalDailyExpenses":      {English: "Total Daily Expenses", Tamil: "மொத்த தினசரி செலவுகள்"},
	"totalCreditCardExpenses": {English: "Total Credit Card Expenses", Tamil: "மொத்த கிரெடிட் கார்டு செலவுகள்"},
	"totalSpecialExpenses":    {English: "Total Special Expenses", Tamil: "மொத்த சிறப்புச் செலவுகள்"},
	"grandTotal":              {English: "Grand Total", Tamil: "மொத்த தொகை"},
	"noDataForMonth":          {English: "No data available for this month.", Tamil: "இந்த மாதத்திற்கு தரவு எதுவும் இல்லை."},
	"recentTransactions":      {English: "Recent Transactions", Tamil: "சமீபத்திய பரிவர்த்தனைகள்"},
	"noTransactionsYet":       {English: "No transactions yet. Add one to get started!", Tamil: "இன்னும் பரிவர்த்தனைகள் இல்லை. தொடங்க ஒன்றைச் சேர்க்கவும்!"},

	// Export
	"exportThisMonth":    {English: "Export This Month", Tamil: "இந்த மாதத்தை ஏற்றுமதி செய்"},
	"exportAllData":      {English: "Export All Data (PDF)", Tamil: "எல்லா தரவையும் ஏற்றுமதி செய் (PDF)"},
	"exportAllDataExcel": {English: "Export All Data (Excel)", Tamil: "எல்லா தரவையும் ஏற்றுமதி செய் (Excel)"},
	"noEntries":          {English: "No entries for this period.", Tamil: "இந்த காலத்திற்கு பதிவுகள் இல்லை."},
	"dataExported":       {English: "Data exported successfully!", Tamil: "தரவு வெற்றிகரமாக ஏற்றுமதி செய்யப்பட்டது!"},
	"errorExportingData": {English: "Error exporting data.", Tamil: "தரவை ஏற்றுமதி செய்வதில் பிழை."},

	// Settings
	"language":            {English: "Language", Tamil: "மொழி"},
	"clearAllData":        {English: "Clear All Data", Tamil: "எல்லா தரவையும் அழி"},
	"confirmClearAllData": {English: "Are you sure you want to clear ALL data? This action cannot be undone.", Tamil: "நீங்கள் எல்லா தரவையும் அழிக்க விரும்புகிறீர்களா? இந்தச் செயலைச் செயல்தவிர்க்க முடியாது."},
	"dataCleared":         {English: "All data cleared successfully.", Tamil: "எல்லா தரவும் வெற்றிகரமாக அழிக்கப்பட்டது."},
	"errorClearingData":   {English: "Error clearing data.", Tamil: "தரவை அழிப்பதில் பிழை."},

	// Expense list
	"manageExpensesTitle":  {English: "{expenseType} Expenses", Tamil: "{expenseType} செலவுகள்"},
	"noExpensesOfType":     {English: "No {expenseType} expenses recorded yet. Add one!", Tamil: "இன்னும் {expenseType} செலவுகள் பதிவு செய்யப்படவில்லை. ஒன்றைச் சேர்க்கவும்!"},
	"confirmDeleteExpense": {English: "Are you sure you want to delete this expense?", Tamil: "இந்த செலவை நீக்க விரும்புகிறீர்களா?"},
}
