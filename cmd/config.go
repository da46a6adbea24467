package cmd

type Config struct {
	HTTPPort            string
	KitchenFile         string
	FulfillmentSchedule string
}
