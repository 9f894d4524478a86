// internal/membership/domain_test.go
package membership

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestAddFundsIgnoresNonPositiveAmounts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := decimal.NewFromFloat(rapid.Float64Range(0, 1e6).Draw(t, "start"))
		amount := decimal.NewFromFloat(rapid.Float64Range(-1e6, 0).Draw(t, "amount"))

		a := NewAccount("S1", "Test", "test@uni.edu", start)
		a.AddFunds(amount)

		assert.True(t, a.Balance().Equal(start),
			"balance changed from %s to %s by deposit of %s", start, a.Balance(), amount)
	})
}

func TestAddFundsCreditsPositiveAmounts(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := decimal.NewFromFloat(rapid.Float64Range(0, 1e6).Draw(t, "start"))
		amount := decimal.NewFromFloat(rapid.Float64Range(0.01, 1e6).Draw(t, "amount"))

		a := NewAccount("S1", "Test", "test@uni.edu", start)
		a.AddFunds(amount)

		assert.True(t, a.Balance().Equal(start.Add(amount)))
	})
}

func TestDeductClampsAtZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := decimal.NewFromFloat(rapid.Float64Range(0, 1e6).Draw(t, "start"))
		over := decimal.NewFromFloat(rapid.Float64Range(0, 1e6).Draw(t, "over"))

		a := NewAccount("S1", "Test", "test@uni.edu", start)
		a.Deduct(start.Add(over))

		assert.True(t, a.Balance().IsZero(),
			"deducting %s from %s left %s", start.Add(over), start, a.Balance())
	})
}

func TestBalanceNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := NewAccount("S1", "Test", "test@uni.edu",
			decimal.NewFromFloat(rapid.Float64Range(0, 1e4).Draw(t, "start")))

		steps := rapid.IntRange(1, 20).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			amount := decimal.NewFromFloat(rapid.Float64Range(-1e4, 1e4).Draw(t, "amount"))
			if rapid.Bool().Draw(t, "deposit") {
				a.AddFunds(amount)
			} else if !amount.IsNegative() {
				a.Deduct(amount)
			}
			assert.False(t, a.Balance().IsNegative(), "balance went negative: %s", a.Balance())
		}
	})
}

func TestDeductPartial(t *testing.T) {
	a := NewAccount("S1", "Test", "test@uni.edu", decimal.NewFromInt(70))
	a.Deduct(decimal.NewFromInt(4))
	assert.True(t, a.Balance().Equal(decimal.NewFromInt(66)))
}

func TestStudentRoleQuery(t *testing.T) {
	student := NewStudent("S100", "Amina", "amina@uni.edu", decimal.NewFromInt(50),
		StudentRole{MaxConcurrentBorrows: 2, DiscountFactor: decimal.RequireFromString("0.8")})

	role, ok := student.StudentRole()
	assert.True(t, ok)
	assert.Equal(t, 2, role.MaxConcurrentBorrows)
	assert.True(t, role.DiscountFactor.Equal(decimal.RequireFromString("0.8")))

	_, ok = student.StaffRole()
	assert.False(t, ok)
	assert.Equal(t, "Student", student.RoleLabel())
}

func TestStaffRoleQuery(t *testing.T) {
	staff := NewStaff("ST200", "Omar", "omar@uni.edu", decimal.NewFromInt(75),
		StaffRole{CanApprovePurchases: true})

	role, ok := staff.StaffRole()
	assert.True(t, ok)
	assert.True(t, role.CanApprovePurchases)

	_, ok = staff.StudentRole()
	assert.False(t, ok)
	assert.Equal(t, "Staff", staff.RoleLabel())
}

func TestTeachingAssistantCarriesBothRoles(t *testing.T) {
	ta := NewTeachingAssistant("TA300", "Lina", "lina@uni.edu", decimal.NewFromInt(60),
		StudentRole{MaxConcurrentBorrows: 2, DiscountFactor: decimal.RequireFromString("0.85")},
		StaffRole{CanApprovePurchases: true})

	_, studentOK := ta.StudentRole()
	_, staffOK := ta.StaffRole()
	assert.True(t, studentOK)
	assert.True(t, staffOK)
	assert.Equal(t, "TeachingAssistant", ta.RoleLabel())
}

func TestTeachingAssistantSharesOneBalance(t *testing.T) {
	ta := NewTeachingAssistant("TA300", "Lina", "lina@uni.edu", decimal.NewFromInt(60),
		StudentRole{MaxConcurrentBorrows: 2, DiscountFactor: decimal.RequireFromString("0.85")},
		StaffRole{CanApprovePurchases: true})

	// Both capabilities sit over the same account record, so every view of
	// the balance moves together.
	ta.AddFunds(decimal.NewFromInt(5))
	ta.Deduct(decimal.NewFromInt(10))

	assert.Same(t, ta.Account(), ta.Account())
	assert.True(t, ta.Balance().Equal(decimal.NewFromInt(55)))
	assert.True(t, ta.Account().Balance().Equal(decimal.NewFromInt(55)))
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		name string
		user *User
		want string
	}{
		{
			name: "student",
			user: NewStudent("S100", "Amina", "amina@uni.edu", decimal.NewFromInt(50),
				StudentRole{MaxConcurrentBorrows: 2, DiscountFactor: decimal.RequireFromString("0.8")}),
			want: "Amina (S100) | Email: amina@uni.edu | Balance: 50\n" +
				"  Role: Student | MaxBorrows: 2 | Discount: 0.8\n",
		},
		{
			name: "staff",
			user: NewStaff("ST200", "Omar", "omar@uni.edu", decimal.NewFromInt(75),
				StaffRole{CanApprovePurchases: true}),
			want: "Omar (ST200) | Email: omar@uni.edu | Balance: 75\n" +
				"  Role: Staff | PurchaseApproval: Yes\n",
		},
		{
			name: "staff without approval",
			user: NewStaff("ST201", "Noor", "noor@uni.edu", decimal.NewFromInt(30),
				StaffRole{}),
			want: "Noor (ST201) | Email: noor@uni.edu | Balance: 30\n" +
				"  Role: Staff | PurchaseApproval: No\n",
		},
		{
			name: "teaching assistant",
			user: NewTeachingAssistant("TA300", "Lina", "lina@uni.edu", decimal.NewFromInt(60),
				StudentRole{MaxConcurrentBorrows: 2, DiscountFactor: decimal.RequireFromString("0.85")},
				StaffRole{CanApprovePurchases: true}),
			want: "Lina (TA300) | Email: lina@uni.edu | Balance: 60\n" +
				"  Role: TeachingAssistant | MaxBorrows: 2 | Discount: 0.85 | PurchaseApproval: Yes\n",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.Describe())
		})
	}
}
