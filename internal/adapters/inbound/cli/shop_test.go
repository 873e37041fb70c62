package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShop_ListTotalQuit(t *testing.T) {
	out, err := run(t, "1\n2\n4\n", "shop", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Store Menu")
	assert.Contains(t, out, "1. MacBook Air M2")
	assert.Contains(t, out, "Total of 850 items in store")
	assert.Contains(t, out, "Goodbye!")
}

func TestShop_RootRunsMenu(t *testing.T) {
	out, err := run(t, "4\n", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Store Menu")
	assert.Contains(t, out, "Goodbye!")
}

func TestShop_PlaceOrder(t *testing.T) {
	input := strings.Join([]string{
		"3",     // make an order
		"1", "2", // 2 x MacBook
		"3", "3", // 3 x Pixel
		"",  // finish
		"2", // total afterwards
		"4",
	}, "\n") + "\n"

	out, err := run(t, input, "shop", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "When you want to finish order, enter empty text.")
	assert.Equal(t, 2, strings.Count(out, "Product added to list!"))
	assert.Contains(t, out, "Order made! Total payment: $4400")
	assert.Contains(t, out, "Total of 845 items in store")
}

func TestShop_InvalidInputsRecover(t *testing.T) {
	input := strings.Join([]string{
		"9",        // bad menu choice
		"3",        // order
		"0",        // bad product number
		"abc",      // bad product number
		"2", "-1",  // bad quantity
		"2", "1",   // valid line
		"",         // finish
		"4",
	}, "\n") + "\n"

	out, err := run(t, input, "shop", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice. Please enter a number from 1 to 4.")
	assert.Equal(t, 2, strings.Count(out, "Invalid product number. Try again."))
	assert.Contains(t, out, "Invalid quantity. Try again.")
	assert.Contains(t, out, "Order made! Total payment: $250")
}

func TestShop_OrderFailureKeepsLooping(t *testing.T) {
	input := strings.Join([]string{
		"3",
		"1", "5", // 5 x MacBook succeeds
		"3", "999", // too many Pixels
		"",
		"1", // list again
		"4",
	}, "\n") + "\n"

	out, err := run(t, input, "shop", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "Order failed:")
	assert.Contains(t, out, "insufficient stock")
	assert.Contains(t, out, "Quantity: 95", "earlier line is not rolled back")
	assert.Contains(t, out, "Goodbye!")
}

func TestShop_EmptyOrder(t *testing.T) {
	out, err := run(t, "3\n\n4\n", "shop", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No products ordered.")
}

func TestShop_EndOfInputExits(t *testing.T) {
	out, err := run(t, "1\n", "shop", "--path", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "1. MacBook Air M2")
	assert.NotContains(t, out, "Goodbye!")
}

func TestShop_DepletedProductDisappears(t *testing.T) {
	dir := writeCatalog(t, `
products:
  - name: Last Lamp
    price: 40
    quantity: 1
  - name: Desk
    price: 200
    quantity: 3
`)
	out, err := run(t, "3\n1\n1\n\n1\n4\n", "shop", "--path", dir)
	require.NoError(t, err)

	lastListing := out[strings.LastIndex(out, "Order made!"):]
	assert.NotContains(t, lastListing, "Last Lamp")
	assert.Contains(t, lastListing, "1. Desk")
}
