// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package generator

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "Michael", "Jennifer", "David",
	"Linda", "William", "Elizabeth", "Richard", "Barbara", "Joseph", "Susan",
	"Thomas", "Jessica", "Daniel", "Sarah", "Matthew", "Karen", "Anthony",
	"Lisa", "Mark", "Nancy", "Steven", "Sandra", "Andrew", "Ashley",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Thompson", "White", "Harris", "Clark", "Lewis", "Walker", "Hall",
}

var cities = []string{
	"Springfield", "Riverside", "Fairview", "Franklin", "Clinton",
	"Greenville", "Bristol", "Salem", "Madison", "Georgetown", "Arlington",
	"Ashland", "Dover", "Oxford", "Milton", "Newport", "Auburn", "Clayton",
}

var stateAbbrs = []string{
	"AL", "AZ", "CA", "CO", "FL", "GA", "IL", "IN", "KY", "MA", "MD", "MI",
	"MN", "MO", "NC", "NJ", "NY", "OH", "OR", "PA", "TN", "TX", "VA", "WA",
}

var streetNames = []string{
	"Maple", "Oak", "Cedar", "Pine", "Elm", "Walnut", "Chestnut", "Willow",
	"Birch", "Sycamore", "Juniper", "Magnolia", "Highland", "Sunset",
	"Prospect", "Lakeview",
}

var streetTypes = []string{
	"Street", "Avenue", "Road", "Boulevard", "Drive", "Lane", "Way", "Court",
}

var nationalities = []string{
	"American", "Canadian", "British", "French", "German", "Italian",
	"Spanish", "Dutch", "Swedish", "Norwegian", "Australian", "Irish",
	"Portuguese", "Austrian", "Belgian", "Danish",
}
