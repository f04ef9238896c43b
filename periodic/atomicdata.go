/*
 * atomicdata.go, part of Chemiverse.
 *
 * Copyright 2026 The Chemiverse developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package periodic

//Element symbols indexed by atomic number. Index 0 is unused.
var symbols = [N + 1]string{
	1: "H", 2: "He",
	3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O", 9: "F", 10: "Ne",
	11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P", 16: "S", 17: "Cl", 18: "Ar",
	19: "K", 20: "Ca", 21: "Sc", 22: "Ti", 23: "V", 24: "Cr", 25: "Mn", 26: "Fe",
	27: "Co", 28: "Ni", 29: "Cu", 30: "Zn", 31: "Ga", 32: "Ge", 33: "As", 34: "Se",
	35: "Br", 36: "Kr",
	37: "Rb", 38: "Sr", 39: "Y", 40: "Zr", 41: "Nb", 42: "Mo", 43: "Tc", 44: "Ru",
	45: "Rh", 46: "Pd", 47: "Ag", 48: "Cd", 49: "In", 50: "Sn", 51: "Sb", 52: "Te",
	53: "I", 54: "Xe",
	55: "Cs", 56: "Ba", 57: "La", 58: "Ce", 59: "Pr", 60: "Nd", 61: "Pm", 62: "Sm",
	63: "Eu", 64: "Gd", 65: "Tb", 66: "Dy", 67: "Ho", 68: "Er", 69: "Tm", 70: "Yb",
	71: "Lu", 72: "Hf", 73: "Ta", 74: "W", 75: "Re", 76: "Os", 77: "Ir", 78: "Pt",
	79: "Au", 80: "Hg", 81: "Tl", 82: "Pb", 83: "Bi", 84: "Po", 85: "At", 86: "Rn",
	87: "Fr", 88: "Ra", 89: "Ac", 90: "Th", 91: "Pa", 92: "U", 93: "Np", 94: "Pu",
	95: "Am", 96: "Cm", 97: "Bk", 98: "Cf", 99: "Es", 100: "Fm", 101: "Md", 102: "No",
	103: "Lr", 104: "Rf", 105: "Db", 106: "Sg", 107: "Bh", 108: "Hs", 109: "Mt",
	110: "Ds", 111: "Rg", 112: "Cn", 113: "Nh", 114: "Fl", 115: "Mc", 116: "Lv",
	117: "Ts", 118: "Og",
}

//A map for assigning Pauling electronegativities to elements, keyed by
//atomic number. Values as compiled in the CRC Handbook (Pauling scale).
//Elements without a measured value (some noble gases, a few lanthanides
//and every element past lawrencium) are simply absent from the map.
var pauling = map[int]float64{
	1:   2.20,
	3:   0.98,
	4:   1.57,
	5:   2.04,
	6:   2.55,
	7:   3.04,
	8:   3.44,
	9:   3.98,
	11:  0.93,
	12:  1.31,
	13:  1.61,
	14:  1.90,
	15:  2.19,
	16:  2.58,
	17:  3.16,
	19:  0.82,
	20:  1.00,
	21:  1.36,
	22:  1.54,
	23:  1.63,
	24:  1.66,
	25:  1.55,
	26:  1.83,
	27:  1.88,
	28:  1.91,
	29:  1.90,
	30:  1.65,
	31:  1.81,
	32:  2.01,
	33:  2.18,
	34:  2.55,
	35:  2.96,
	36:  3.00,
	37:  0.82,
	38:  0.95,
	39:  1.22,
	40:  1.33,
	41:  1.60,
	42:  2.16,
	43:  1.90,
	44:  2.20,
	45:  2.28,
	46:  2.20,
	47:  1.93,
	48:  1.69,
	49:  1.78,
	50:  1.96,
	51:  2.05,
	52:  2.10,
	53:  2.66,
	54:  2.60,
	55:  0.79,
	56:  0.89,
	57:  1.10,
	58:  1.12,
	59:  1.13,
	60:  1.14,
	62:  1.17,
	64:  1.20,
	66:  1.22,
	67:  1.23,
	68:  1.24,
	69:  1.25,
	71:  1.27,
	72:  1.30,
	73:  1.50,
	74:  2.36,
	75:  1.90,
	76:  2.20,
	77:  2.20,
	78:  2.28,
	79:  2.54,
	80:  2.00,
	81:  1.62,
	82:  2.33,
	83:  2.02,
	84:  2.00,
	85:  2.20,
	87:  0.70,
	88:  0.90,
	89:  1.10,
	90:  1.30,
	91:  1.50,
	92:  1.38,
	93:  1.36,
	94:  1.28,
	95:  1.30,
	96:  1.28,
	97:  1.30,
	98:  1.30,
	99:  1.30,
	100: 1.30,
	101: 1.30,
	102: 1.30,
}
