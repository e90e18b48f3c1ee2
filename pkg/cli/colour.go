package cli

const Reset = "\033[0m"
const RedColour = "\033[31m"
const GreenColour = "\033[32m"
const YellowColour = "\033[33m"
const BlueColour = "\033[34m"
const CyanColour = "\033[36m"
