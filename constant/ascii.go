package constant

// AsciiArtLogo is the banner printed above the root command help.
const AsciiArtLogo = `
   _______  ____  ____________  __ __
  / ___/ / /  _/ / __/ __/ __/ / //_/
 / /__/ /___/ /_/ _\ \/ _// _/  / ,<
 \___/____/___/ /___/___/___/  /_/|_|`
