package decimal

// PI is fixed to 100 significant digits, as required by spec.md §6.
const piDigits = "3.141592653589793238462643383279502884197169399375105820974944592307816406286208998628034825342117067"

// E is fixed to 65 significant digits, as required by spec.md §6.
const eDigits = "2.7182818284590452353602874713526624977572470936999595749669676277"

// PI returns the standard-constants PI value at 100-digit precision.
func PI() Number { return NewFromString(piDigits, 332) }

// E returns the standard-constants E value at 65-digit precision.
func E() Number { return NewFromString(eDigits, 216) }
